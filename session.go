package steam

import (
	"fmt"
	"os"
)

var appIDEnv = []string{"SteamAppId", "SteamGameId"}

// setAppEnv points the SDK at appID and returns a func restoring the previous values.
func setAppEnv(appID AppID) (func(), error) {
	type saved struct {
		value string
		set   bool
	}

	prev := make(map[string]saved, len(appIDEnv))
	restore := func() {
		for key, s := range prev {
			if s.set {
				os.Setenv(key, s.value)
			} else {
				os.Unsetenv(key)
			}
		}
	}

	for _, key := range appIDEnv {
		value, set := os.LookupEnv(key)
		prev[key] = saved{value: value, set: set}
		if err := os.Setenv(key, appID.ToString()); err != nil {
			restore()
			return nil, err
		}
	}

	return restore, nil
}

func (c *Client) initSession(appID AppID) (Pipe, error) {
	restore, err := setAppEnv(appID)
	if err != nil {
		return 0, err
	}

	result, msg := c.sdk.Init()
	restore()

	c.logger.Debug("steam api init", "app_id", appID, "result", result.String(), "message", msg)

	switch result {
	case InitOK:
	case InitFailedGeneric:
		return 0, initError(InitializationFailedError, msg)
	case InitNoSteamClient:
		return 0, initError(ClientNotRunningError, msg)
	default:
		if !c.lenientInit {
			return 0, initError(InitializationFailedError, fmt.Sprintf("%s: %s", result, msg))
		}
		c.logger.Warn("accepting unexpected init result", "result", result.String())
	}

	c.sdk.ManualDispatchInit()
	return c.sdk.Pipe(), nil
}

func initError(err error, msg string) error {
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
