package flow

import "fmt"

// LinkKey formats the "source-target" key used to tag rendered links.
func LinkKey(source, target int) string {
	return fmt.Sprintf("%d-%d", source, target)
}
