/*
Package iso7816 encodes and decodes smart card commands and responses
according to ISO/IEC 7816-3 and 7816-4.

The header bytes of a command are packed registers. Each field is read and
written as a bounded integer from package arbint, so a value that does not
fit its bits is rejected instead of spilling into the neighbouring field:

	CLA          chaining U1, secure messaging U2, channel U2 or U4
	SELECT P2    selection control U2, occurrence U2
	READ RECORD  SFI U5, reference mode U3
	SW 63CX      counter U4

A Client sends a CommandAPDU through a Transmitter, follows the 61XX and
6CXX transport procedures and returns the whole exchange as a Trace.
SelectResult and ReadRecordResult turn a Trace into a readable report:

	trace, err := client.Send(iso7816.SelectByAID(cls, aid))
	if err != nil {
		return err
	}
	res, err := iso7816.NewSelectResult(trace)
	if err != nil {
		return err
	}
	fmt.Println(res.Describe())
*/
package iso7816
