package steam

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"
)

type Ticket struct {
	AppID   AppID
	SteamID SteamID
	Data    []byte
}

func (t *Ticket) Encoded() string {
	return base64.StdEncoding.EncodeToString(t.Data)
}

// RequestEncryptedAppTicket starts a Steamworks session for appID and blocks
// until the ticket arrives or ctx is done. Only one call may run at a time
// in the process, across all clients.
func (c *Client) RequestEncryptedAppTicket(ctx context.Context, appID AppID) (*Ticket, error) {
	if !sessionActive.CompareAndSwap(false, true) {
		return nil, SessionActiveError
	}
	defer sessionActive.Store(false)

	pipe, err := c.initSession(appID)
	if err != nil {
		return nil, err
	}

	call := c.sdk.RequestEncryptedAppTicket(nil)
	c.logger.Debug("requested encrypted app ticket", "app_id", appID, "call", uint64(call), "pipe", int32(pipe))

	if err := c.waitTicketResponse(ctx, pipe); err != nil {
		return nil, err
	}

	data, err := c.fetchTicket()
	if err != nil {
		return nil, err
	}

	ticket := &Ticket{
		AppID:   appID,
		SteamID: c.sdk.SteamID(),
		Data:    data,
	}
	c.logger.Info("got encrypted app ticket", "app_id", appID, "steam_id", ticket.SteamID.ToString(), "size", len(data))

	return ticket, nil
}

func (c *Client) waitTicketResponse(ctx context.Context, pipe Pipe) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		if call, ok := c.runCallbacks(pipe); ok {
			c.logger.Debug("encrypted app ticket response", "call", uint64(call))
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", TicketTimeoutError, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) fetchTicket() ([]byte, error) {
	buf := make([]byte, MaxTicketSize)

	resp, ok := c.sdk.EncryptedAppTicket(TicketRequest{Buffer: buf})
	if !ok {
		return nil, TicketRetrievalFailedError
	}
	if int(resp.Length) > len(buf) {
		return nil, fmt.Errorf("%w: reported length %d exceeds buffer of %d", TicketRetrievalFailedError, resp.Length, len(buf))
	}

	return buf[:resp.Length], nil
}
