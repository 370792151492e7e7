package steam

// runCallbacks pumps one frame and drains the queue. It returns the handle of
// a completed, successful ticket response if one was seen.
func (c *Client) runCallbacks(pipe Pipe) (APICall, bool) {
	var (
		call  APICall
		found bool
	)

	c.sdk.RunFrame(pipe)

	for {
		msg, ok := c.sdk.NextCallback(pipe)
		if !ok {
			break
		}

		if msg.Callback == APICallCompletedCallback && msg.Completed != nil {
			completed := msg.Completed
			result, ok := c.sdk.APICallResult(pipe, APICallResultRequest{
				Call:     completed.Call,
				Size:     completed.Size,
				Expected: completed.Callback,
			})

			switch {
			case !ok:
				c.logger.Debug("api call result unavailable", "call", uint64(completed.Call))
			case result.Failed:
				c.logger.Debug("api call failed", "call", uint64(completed.Call), "callback", int32(completed.Callback))
			case completed.Callback == EncryptedAppTicketResponseCallback:
				call, found = completed.Call, true
			}
		}

		c.sdk.FreeLastCallback(pipe)
	}

	return call, found
}
