package steam

import "fmt"

const (
	// MaxTicketSize is the capacity handed to the SDK when fetching a ticket.
	MaxTicketSize = 2048

	APICallCompletedCallback           CallbackID = 703
	EncryptedAppTicketResponseCallback CallbackID = 154
)

type (
	Pipe       int32
	APICall    uint64
	CallbackID int32
	InitResult int32
)

const (
	InitOK InitResult = iota
	InitFailedGeneric
	InitNoSteamClient
	InitVersionMismatch
)

func (r InitResult) String() string {
	switch r {
	case InitOK:
		return "ok"
	case InitFailedGeneric:
		return "failed generic"
	case InitNoSteamClient:
		return "no steam client"
	case InitVersionMismatch:
		return "version mismatch"
	}
	return fmt.Sprintf("unknown(%d)", int32(r))
}

// CallbackMsg is one record drained from the dispatch queue. Completed is set
// only for APICallCompletedCallback records.
type CallbackMsg struct {
	User      int32
	Callback  CallbackID
	Size      int32
	Completed *APICallCompleted
}

type APICallCompleted struct {
	Call     APICall
	Callback CallbackID
	Size     uint32
}

type APICallResultRequest struct {
	Call     APICall
	Size     uint32
	Expected CallbackID
}

type APICallResult struct {
	Payload []byte
	Failed  bool
}

type TicketRequest struct {
	// Buffer receives the ticket; its length is the capacity passed to the SDK.
	Buffer []byte
}

type TicketResponse struct {
	Length uint32
}

// SDK is the part of Steamworks the ticket flow needs. Implementations own all
// native memory; callers only see Go values.
type SDK interface {
	Init() (InitResult, string)
	ManualDispatchInit()
	Pipe() Pipe
	RunFrame(pipe Pipe)
	NextCallback(pipe Pipe) (CallbackMsg, bool)
	FreeLastCallback(pipe Pipe)
	APICallResult(pipe Pipe, req APICallResultRequest) (APICallResult, bool)
	RequestEncryptedAppTicket(data []byte) APICall
	EncryptedAppTicket(req TicketRequest) (TicketResponse, bool)
	SteamID() SteamID
}
