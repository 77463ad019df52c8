package cli

import (
	"github.com/spf13/cobra"
)

// An actionCommand is a sub-command performing one operation
// of an executable and reporting failure as an error.
type actionCommand struct {
	use     string
	short   string
	long    string
	args    cobra.PositionalArgs
	runFunc func(cmd *cobra.Command, args []string) error
}

var _ cobraCommand = (*actionCommand)(nil)

// NewActionCommand constructs a new ActionCommand for the given
// use, descriptions, positional argument validator and the runFunc
// implementing the operation.
func NewActionCommand(use, short, long string, args cobra.PositionalArgs,
	runFunc func(cmd *cobra.Command, args []string) error) *cobra.Command {
	actionCmd := &actionCommand{
		use:     use,
		short:   short,
		long:    long,
		args:    args,
		runFunc: runFunc,
	}
	return actionCmd.Build()
}

// Build constructs the cobra.Command according to the
// ActionCommand's settings.
func (actionCmd *actionCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:          actionCmd.use,
		Short:        actionCmd.short,
		Long:         actionCmd.long,
		Args:         actionCmd.args,
		RunE:         actionCmd.runFunc,
		SilenceUsage: true,
	}
	return &cmd
}
