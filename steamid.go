package steam

import "strconv"

type SteamID uint64

const (
	UniverseInvalid = iota
	UniversePublic
	UniverseBeta
	UniverseInternal
	UniverseDev
)

const (
	AccountTypeInvalid = iota
	AccountTypeIndividual
	AccountTypeMultiSeat
	AccountTypeGameServer
	AccountTypeAnonymousGameServer
	AccountTypePending
	AccountTypeContentServer
	AccountTypeClan
	AccountTypeChat
	AccountTypeP2PSuperSeeder
	AccountTypeAnonymous
)

func NewSteamID(accountID uint32, instance uint32, accountType uint32, universe uint8) SteamID {
	bits := uint64(accountID)
	bits |= uint64(instance&0xFFFFF) << 32
	bits |= uint64(accountType&0xF) << 52
	bits |= uint64(universe) << 56
	return SteamID(bits)
}

func (sid SteamID) AccountID() uint32 {
	return uint32(sid & 0xFFFFFFFF)
}

func (sid SteamID) Instance() uint32 {
	return uint32((sid >> 32) & 0xFFFFF)
}

func (sid SteamID) AccountType() uint32 {
	return uint32((sid >> 52) & 0xF)
}

func (sid SteamID) Universe() uint32 {
	return uint32((sid >> 56) & 0xFF)
}

// IsIndividual reports whether the id belongs to a regular user account in the public universe.
func (sid SteamID) IsIndividual() bool {
	return sid.AccountType() == AccountTypeIndividual && sid.Universe() == UniversePublic
}

func (sid SteamID) ToString() string {
	return strconv.FormatUint(uint64(sid), 10)
}

func ParseSteamID(s string) (SteamID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return SteamID(v), nil
}
