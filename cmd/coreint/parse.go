package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/coreint"
)

// errSomeFailed makes the process exit non-zero after all output was
// written.
var errSomeFailed = errors.New("some inputs did not parse")

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse the leading integer of each argument (or each stdin line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.kernelConfig()
			if err != nil {
				return err
			}
			p := coreint.MustNewParser(cfg)
			out := newPrinter(cmd.OutOrStdout(), opts.plain)

			inputs := args
			if len(inputs) == 0 {
				lines := bufio.NewScanner(cmd.InOrStdin())
				for lines.Scan() {
					inputs = append(inputs, lines.Text())
				}
				if err := lines.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			failed := 0
			for _, in := range inputs {
				if !parseOne(out, p, in) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errSomeFailed, failed, len(inputs))
			}
			return nil
		},
	}
}

// parseOne prints the result for one input and reports success.
func parseOne(out *printer, p *coreint.Parser, in string) bool {
	r := p.ParseString(in)
	if r.Len > 0 {
		out.table(strconv.Quote(in), []row{
			{label: "value", value: out.number(r.Value)},
			{label: "len", value: strconv.Itoa(r.Len)},
		})
		return true
	}

	// The kernel does not tell overflow from a missing number.
	_, n, err := coreint.ParseUint64([]byte(in))
	out.table(strconv.Quote(in), []row{
		{label: "error", value: err.Error(), err: true},
		{label: "len", value: strconv.Itoa(n)},
	})
	return false
}
