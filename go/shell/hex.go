package shell

import (
	"strconv"

	"github.com/sandlua/sandlua/go/models"
)

// parseAddress accepts 0x/0o/0b prefixes and falls back to def.
func parseAddress(c *Context, s string, def uint64) uint64 {
	addr, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		c.Warnf("Invalid address '%s', using default %d\n", s, def)
		return def
	}
	return addr
}

var HexCmd = cmd(&Command{
	Name:    "hex",
	Usage:   "hex <data_path> [address]",
	Desc:    "Display hex dump of binary data.",
	MinArgs: 1,
	Run: func(c *Context, path string, addr ...string) error {
		var base uint64
		if len(addr) > 0 {
			base = parseAddress(c, addr[0], 0)
		}
		data, err := readFile(c, path)
		if err != nil {
			return err
		}
		for _, line := range models.HexDump(base, data, c.Config.HexWidth) {
			c.Printf("%s\n", line)
		}
		return nil
	},
})
