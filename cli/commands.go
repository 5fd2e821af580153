package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Run   RunCmd   `cmd:"" default:"withargs" help:"Replay grocery command files and print their inventory and profit output."`
	Watch WatchCmd `cmd:"" help:"Replay a grocery command file and re-run it whenever it changes."`
}
