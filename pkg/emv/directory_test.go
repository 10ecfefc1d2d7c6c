package emv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregLibert/arbint/pkg/tlv"
)

var directoryRecord = tlv.Hex(
	"70 2F",
	"61 1F",
	"4F 07 A0000000041010",
	"50 0A 4D617374657243617264", // "MasterCard"
	"87 01 81",                   // confirmation, priority 1
	"73 05 5F55 02 4652",         // "FR"
	"61 0C",
	"4F 07 A0000000031010",
	"87 01 02",
)

func TestParseDirectoryRecord(t *testing.T) {
	record, err := ParseDirectoryRecord(directoryRecord)
	require.NoError(t, err)
	require.Len(t, record.Applications, 2)

	first := record.Applications[0]
	assert.Equal(t, tlv.Hex("A0000000041010"), first.AID)
	assert.Equal(t, "MasterCard", string(first.ApplicationLabel))
	assert.Equal(t, "FR", string(first.DirectoryDiscretionaryData.IssuerCountryCodeAlpha2))
	assert.True(t, first.ApplicationPriorityIndicator.RequiresConfirmation())
	assert.Equal(t, uint8(1), first.ApplicationPriorityIndicator.Priority.Value())

	second := record.Applications[1]
	assert.Equal(t, tlv.Hex("A0000000031010"), second.AID)
	assert.False(t, second.ApplicationPriorityIndicator.RequiresConfirmation())
	assert.Equal(t, uint8(2), second.ApplicationPriorityIndicator.Priority.Value())
}

func TestParseDirectoryRecordErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{"Empty Data", nil, "emv: empty data"},
		{"Not a record template", tlv.Hex("6F 03 84 01 00"), "emv: record template 70 missing, got tag 6F"},
		{"Bad priority", tlv.Hex("70 06 61 04 87 02 0101"), "emv: directory record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirectoryRecord(tt.data)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDirectoryRecord_Describe(t *testing.T) {
	record, err := ParseDirectoryRecord(directoryRecord)
	require.NoError(t, err)

	want := `=== EMV DIRECTORY RECORD ===
    - App[1].AID (4F): A0000000041010
    - App[1].ApplicationLabel (50): 4D617374657243617264 ("MasterCard")
    - App[1].ApplicationPriorityIndicator (87): 81 (Dec: 1)
    - App[1].Discretionary.IssuerCountryCodeAlpha2 (5F55): 4652 ("FR")
    - App[2].AID (4F): A0000000031010
    - App[2].ApplicationPriorityIndicator (87): 02 (Dec: 2)`

	if diff := cmp.Diff(want, record.Describe()); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}
