package steam

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

const steamErrMsgSize = 1024

// Native layouts of CallbackMsg_t and SteamAPICallCompleted_t.
type nativeCallbackMsg struct {
	user     int32
	callback int32
	param    uintptr
	size     int32
	_        int32
}

type nativeAPICallCompleted struct {
	call     uint64
	callback int32
	size     uint32
}

// Steamworks is the SDK backed by the flat Steamworks C API, loaded at runtime.
type Steamworks struct {
	initFlat                  func(errMsg unsafe.Pointer) int32
	manualDispatchInit        func()
	getHSteamPipe             func() int32
	runFrame                  func(pipe int32)
	getNextCallback           func(pipe int32, msg unsafe.Pointer) bool
	freeLastCallback          func(pipe int32)
	getAPICallResult          func(pipe int32, call uint64, buf unsafe.Pointer, size int32, expected int32, failed unsafe.Pointer) bool
	steamUser                 func() uintptr
	requestEncryptedAppTicket func(user uintptr, data unsafe.Pointer, size int32) uint64
	getEncryptedAppTicket     func(user uintptr, buf unsafe.Pointer, max int32, size unsafe.Pointer) bool
	getSteamID                func(user uintptr) uint64
}

var _ SDK = (*Steamworks)(nil)

func DefaultLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "steam_api64.dll"
	case "darwin":
		return "libsteam_api.dylib"
	}
	return "libsteam_api.so"
}

// NewSteamworks loads the Steamworks library at path, or the platform default
// name when path is empty.
func NewSteamworks(path string) (*Steamworks, error) {
	if path == "" {
		path = DefaultLibraryName()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", LibraryNotFoundError, err)
	}

	lib, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", LibraryNotFoundError, path, err)
	}

	s := &Steamworks{}
	symbols := []struct {
		fn   any
		name string
	}{
		{&s.initFlat, "SteamAPI_InitFlat"},
		{&s.manualDispatchInit, "SteamAPI_ManualDispatch_Init"},
		{&s.getHSteamPipe, "SteamAPI_GetHSteamPipe"},
		{&s.runFrame, "SteamAPI_ManualDispatch_RunFrame"},
		{&s.getNextCallback, "SteamAPI_ManualDispatch_GetNextCallback"},
		{&s.freeLastCallback, "SteamAPI_ManualDispatch_FreeLastCallback"},
		{&s.getAPICallResult, "SteamAPI_ManualDispatch_GetAPICallResult"},
		{&s.steamUser, "SteamAPI_SteamUser_v023"},
		{&s.requestEncryptedAppTicket, "SteamAPI_ISteamUser_RequestEncryptedAppTicket"},
		{&s.getEncryptedAppTicket, "SteamAPI_ISteamUser_GetEncryptedAppTicket"},
		{&s.getSteamID, "SteamAPI_ISteamUser_GetSteamID"},
	}
	for _, sym := range symbols {
		if err := register(sym.fn, lib, sym.name); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// register turns purego's panic on a missing symbol into an error.
func register(fn any, lib uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("steam api symbol %s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fn, lib, name)
	return nil
}

func (s *Steamworks) Init() (InitResult, string) {
	var msg [steamErrMsgSize]byte
	r := s.initFlat(unsafe.Pointer(&msg[0]))

	if i := bytes.IndexByte(msg[:], 0); i >= 0 {
		return InitResult(r), string(msg[:i])
	}
	return InitResult(r), string(msg[:])
}

func (s *Steamworks) ManualDispatchInit() {
	s.manualDispatchInit()
}

func (s *Steamworks) Pipe() Pipe {
	return Pipe(s.getHSteamPipe())
}

func (s *Steamworks) RunFrame(pipe Pipe) {
	s.runFrame(int32(pipe))
}

func (s *Steamworks) NextCallback(pipe Pipe) (CallbackMsg, bool) {
	var native nativeCallbackMsg
	if !s.getNextCallback(int32(pipe), unsafe.Pointer(&native)) {
		return CallbackMsg{}, false
	}

	msg := CallbackMsg{
		User:     native.user,
		Callback: CallbackID(native.callback),
		Size:     native.size,
	}
	if msg.Callback == APICallCompletedCallback && native.param != 0 {
		completed := *(*nativeAPICallCompleted)(unsafe.Pointer(native.param))
		msg.Completed = &APICallCompleted{
			Call:     APICall(completed.call),
			Callback: CallbackID(completed.callback),
			Size:     completed.size,
		}
	}

	return msg, true
}

func (s *Steamworks) FreeLastCallback(pipe Pipe) {
	s.freeLastCallback(int32(pipe))
}

func (s *Steamworks) APICallResult(pipe Pipe, req APICallResultRequest) (APICallResult, bool) {
	payload := make([]byte, req.Size)
	var failed bool

	ok := s.getAPICallResult(
		int32(pipe),
		uint64(req.Call),
		bufferPointer(payload),
		int32(len(payload)),
		int32(req.Expected),
		unsafe.Pointer(&failed),
	)
	if !ok {
		return APICallResult{}, false
	}

	return APICallResult{Payload: payload, Failed: failed}, true
}

func (s *Steamworks) RequestEncryptedAppTicket(data []byte) APICall {
	return APICall(s.requestEncryptedAppTicket(s.steamUser(), bufferPointer(data), int32(len(data))))
}

func (s *Steamworks) EncryptedAppTicket(req TicketRequest) (TicketResponse, bool) {
	var n uint32
	ok := s.getEncryptedAppTicket(s.steamUser(), bufferPointer(req.Buffer), int32(len(req.Buffer)), unsafe.Pointer(&n))
	return TicketResponse{Length: n}, ok
}

func (s *Steamworks) SteamID() SteamID {
	return SteamID(s.getSteamID(s.steamUser()))
}

func bufferPointer(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
