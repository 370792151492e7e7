package steam

import (
	"os"
	"sync"
)

// fakeSDK replays scripted frames of callback records.
type fakeSDK struct {
	mu sync.Mutex

	initResult InitResult
	initMsg    string
	initEnv    map[string]string
	onInit     func()

	// frames[i] is what the queue holds after the i-th RunFrame; empty once exhausted
	frames  [][]CallbackMsg
	results map[APICall]fakeCallResult
	queue   []CallbackMsg

	ticket     []byte
	ticketLen  *uint32
	ticketFail bool
	steamID    SteamID

	manualDispatch bool
	requests       int
	runFrames      int
	freed          int
	ticketFetches  int
}

type fakeCallResult struct {
	ok     bool
	failed bool
}

func (f *fakeSDK) Init() (InitResult, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.initEnv = map[string]string{}
	for _, key := range appIDEnv {
		f.initEnv[key] = os.Getenv(key)
	}
	if f.onInit != nil {
		f.onInit()
	}
	return f.initResult, f.initMsg
}

func (f *fakeSDK) ManualDispatchInit() {
	f.manualDispatch = true
}

func (f *fakeSDK) Pipe() Pipe {
	return 1
}

func (f *fakeSDK) RunFrame(pipe Pipe) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.runFrames < len(f.frames) {
		f.queue = append(f.queue, f.frames[f.runFrames]...)
	}
	f.runFrames++
}

func (f *fakeSDK) NextCallback(pipe Pipe) (CallbackMsg, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return CallbackMsg{}, false
	}
	return f.queue[0], true
}

func (f *fakeSDK) FreeLastCallback(pipe Pipe) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) > 0 {
		f.queue = f.queue[1:]
	}
	f.freed++
}

func (f *fakeSDK) APICallResult(pipe Pipe, req APICallResultRequest) (APICallResult, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.results[req.Call]
	if !ok {
		r = fakeCallResult{ok: true}
	}
	if !r.ok {
		return APICallResult{}, false
	}
	return APICallResult{Payload: make([]byte, req.Size), Failed: r.failed}, true
}

func (f *fakeSDK) RequestEncryptedAppTicket(data []byte) APICall {
	f.requests++
	return 42
}

func (f *fakeSDK) EncryptedAppTicket(req TicketRequest) (TicketResponse, bool) {
	f.ticketFetches++
	if f.ticketFail {
		return TicketResponse{}, false
	}
	n := copy(req.Buffer, f.ticket)
	if f.ticketLen != nil {
		return TicketResponse{Length: *f.ticketLen}, true
	}
	return TicketResponse{Length: uint32(n)}, true
}

func (f *fakeSDK) SteamID() SteamID {
	return f.steamID
}

func completed(call APICall, callback CallbackID) CallbackMsg {
	return CallbackMsg{
		Callback:  APICallCompletedCallback,
		Completed: &APICallCompleted{Call: call, Callback: callback, Size: 8},
	}
}

func ticketResponse(call APICall) CallbackMsg {
	return completed(call, EncryptedAppTicketResponseCallback)
}
