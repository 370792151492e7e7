package steam

import "errors"

var (
	InitializationFailedError  = errors.New("failed to initialize steam api")
	ClientNotRunningError      = errors.New("steam client is not running")
	TicketRetrievalFailedError = errors.New("failed to get encrypted app ticket, does the account own the game?")
	TicketTimeoutError         = errors.New("timed out waiting for encrypted app ticket response")
	ConfigWriteFailedError     = errors.New("failed to write user config")
	ConfigInvalidError         = errors.New("invalid user config")
	SessionActiveError         = errors.New("steam session already active")
	AppIDInvalidError          = errors.New("invalid app id")
	AppNotFoundError           = errors.New("can't find app on store page")
	LibraryNotFoundError       = errors.New("steam api library not found")
)
