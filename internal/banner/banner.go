package banner

import "fmt"

const art = `
  ____ _____ ____ _____ ____ ___  __  __ ____  _  __   __
 / ___| ____|  _ \_   _/ ___/ _ \|  \/  |  _ \| | \ \ / /
| |   |  _| | |_) || || |  | | | | |\/| | |_) | |  \ V /
| |___| |___|  _ < | || |__| |_| | |  | |  __/| |___| |
 \____|_____|_| \_\|_| \____\___/|_|  |_|_|   |_____|_|
`

// Generate returns the startup banner with a caption line.
func Generate(caption string) string {
	return fmt.Sprintf("%s\n%s\n", art, caption)
}
