package steam

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-ini/ini"
)

const (
	DefaultConfigFile = "configs.user.ini"

	configSection    = "user::general"
	configSteamIDKey = "account_steamid"
	configTicketKey  = "ticket"
)

// go-ini keeps its output format in package globals; iniFormatMu serialises
// the swap so callers importing go-ini keep their own settings.
var iniFormatMu sync.Mutex

func writeCompactINI(f *ini.File, w io.Writer) error {
	iniFormatMu.Lock()
	defer iniFormatMu.Unlock()

	prettyFormat, prettySection := ini.PrettyFormat, ini.PrettySection
	ini.PrettyFormat, ini.PrettySection = false, false
	defer func() {
		ini.PrettyFormat, ini.PrettySection = prettyFormat, prettySection
	}()

	_, err := f.WriteTo(w)
	return err
}

type UserConfig struct {
	SteamID SteamID
	Ticket  string
}

func NewUserConfig(ticket *Ticket) *UserConfig {
	return &UserConfig{
		SteamID: ticket.SteamID,
		Ticket:  ticket.Encoded(),
	}
}

func (uc *UserConfig) file() (*ini.File, error) {
	f := ini.Empty()
	sec, err := f.NewSection(configSection)
	if err != nil {
		return nil, err
	}
	if _, err := sec.NewKey(configSteamIDKey, uc.SteamID.ToString()); err != nil {
		return nil, err
	}
	if _, err := sec.NewKey(configTicketKey, uc.Ticket); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteUserConfig overwrites path with the config. Any existing content is lost.
func WriteUserConfig(path string, uc *UserConfig) error {
	f, err := uc.file()
	if err != nil {
		return fmt.Errorf("%w: %w", ConfigWriteFailedError, err)
	}

	var buf bytes.Buffer
	if err := writeCompactINI(f, &buf); err != nil {
		return fmt.Errorf("%w: %w", ConfigWriteFailedError, err)
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ConfigWriteFailedError, err)
	}
	if _, err := buf.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("%w: %w", ConfigWriteFailedError, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ConfigWriteFailedError, err)
	}

	return nil
}

func LoadUserConfig(path string) (*UserConfig, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	sec, err := f.GetSection(configSection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ConfigInvalidError, err)
	}

	raw, err := sec.GetKey(configSteamIDKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ConfigInvalidError, err)
	}
	sid, err := ParseSteamID(raw.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ConfigInvalidError, configSteamIDKey, err)
	}

	ticket, err := sec.GetKey(configTicketKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ConfigInvalidError, err)
	}

	return &UserConfig{SteamID: sid, Ticket: ticket.String()}, nil
}

// TicketData decodes the stored ticket.
func (uc *UserConfig) TicketData() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(uc.Ticket)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ConfigInvalidError, configTicketKey, err)
	}
	return data, nil
}
