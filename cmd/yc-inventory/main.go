// Package main is the entry point for the yc-inventory CLI.
//
// yc-inventory is an Ansible dynamic inventory script for Yandex Cloud:
//
//	ansible-inventory -i yc-inventory --graph
//	ansible-playbook -i yc-inventory site.yml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/inhuman/yc-inventory/cmd/yc-inventory/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
