package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AfshinJalili/artkv"
)

type inspectReport struct {
	Keys       int         `json:"keys"`
	Duplicates int         `json:"duplicates"`
	Rejected   int         `json:"rejected"`
	Stats      artkv.Stats `json:"stats"`
}

func newInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Load newline-separated keys and print the resulting tree shape",
		Long: `Load newline-separated keys from a file (or stdin when the file is
omitted or "-") into a fresh tree and print node statistics as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return inspect(in, cmd.OutOrStdout(), v.GetInt("max-key"), v.GetBool("dump"))
		},
	}
	cmd.Flags().Int("max-key", 1024, "max key size in bytes")
	cmd.Flags().Bool("dump", false, "also print the tree structure")
	return cmd
}

func inspect(r io.Reader, w io.Writer, maxKey int, dump bool) error {
	m := artkv.New[int](artkv.WithMaxKeySize(maxKey))
	report := inspectReport{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		_, err := m.Insert(sc.Bytes(), line)
		switch {
		case err == nil:
		case errors.Is(err, artkv.ErrKeyExists):
			report.Duplicates++
		case errors.Is(err, artkv.ErrOversized):
			report.Rejected++
		default:
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	report.Keys = m.Len()
	report.Stats = m.Stats()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if dump {
		return m.Dump(w)
	}
	return nil
}
