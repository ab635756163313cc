// Command resolve-kick-channels prints the Kick chatroom ID for each given
// channel slug, for use as kick.chatroom_id in chatview.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/john/chatview/internal/kick"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: resolve-kick-channels <channel1> [channel2] ...")
		os.Exit(1)
	}

	failed := false
	for _, channel := range os.Args[1:] {
		chatroomID, slug, err := kick.ResolveChannel(channel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", channel, err)
			failed = true
			continue
		}
		fmt.Printf("%s: %d\n", slug, chatroomID)
	}
	if failed {
		os.Exit(1)
	}
}
