package iso7816

import (
	"errors"
	"fmt"
)

// Transmitter abstracts the physical card connection.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// MaxFollowUps bounds the GET RESPONSE and Le corrections issued for one
// logical command.
const MaxFollowUps = 16

// ErrTooManyFollowUps is returned when a card keeps answering 61XX or 6CXX.
var ErrTooManyFollowUps = errors.New("iso7816: too many GET RESPONSE or Le corrections")

// Client drives a card over a Transmitter and hides the T=0 transport
// procedures from the caller:
//
//	61XX  send GET RESPONSE with Le = XX on the same logical channel
//	6CXX  send the command again with Le = XX
type Client struct {
	Card Transmitter
}

// NewClient creates a new Client instance.
func NewClient(card Transmitter) *Client {
	return &Client{Card: card}
}

// Send transmits cmd and follows 61XX and 6CXX answers. The returned Trace
// holds every exchange, including the partial one when an error occurs.
func (c *Client) Send(cmd *CommandAPDU) (Trace, error) {
	var trace Trace
	for range MaxFollowUps + 1 {
		tx, err := c.transmit(cmd)
		if err != nil {
			return trace, err
		}
		trace = append(trace, tx)

		status := tx.Response.Status
		switch status.SW1() {
		case 0x61:
			cla := cmd.Class
			cla.IsChained = false
			cmd = NewCommandAPDU(cla, MustInstruction(INS_GET_RESPONSE), 0x00, 0x00, nil, leFromSW2(status.SW2()))
		case 0x6C:
			retry := *cmd
			retry.Ne = leFromSW2(status.SW2())
			cmd = &retry
		default:
			return trace, nil
		}
	}
	return trace, ErrTooManyFollowUps
}

func (c *Client) transmit(cmd *CommandAPDU) (Transaction, error) {
	raw, err := cmd.Bytes()
	if err != nil {
		return Transaction{}, fmt.Errorf("iso7816: encode command: %w", err)
	}

	resp, err := c.Card.Transmit(raw)
	if err != nil {
		return Transaction{}, fmt.Errorf("iso7816: transmit: %w", err)
	}

	parsed, err := ParseResponseAPDU(resp)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{Command: cmd, Response: parsed}, nil
}

// leFromSW2 maps the XX of 61XX and 6CXX to Ne, where 00 stands for 256.
func leFromSW2(sw2 byte) int {
	if sw2 == 0 {
		return MaxShortLe
	}
	return int(sw2)
}
