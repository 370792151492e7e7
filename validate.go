package steam

import (
	"fmt"
	"strconv"
	"strings"
)

type AppID uint32

func (id AppID) ToString() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseAppID accepts any decimal that fits in 32 bits.
func ParseAppID(s string) (AppID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", AppIDInvalidError, s)
	}

	return AppID(v), nil
}
