package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ragctl/internal/pip"
	"ragctl/internal/pyenv"
	"ragctl/internal/rag"
)

type doctorCheck struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Details string `json:"details,omitempty"`
}

type doctorReport struct {
	Endpoint string        `json:"endpoint"`
	Checks   []doctorCheck `json:"checks"`
	Errors   int           `json:"errors"`
}

var doctorJSON bool

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output JSON report")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "检查本地运行环境与远程 RAG 服务器",
	Long:  "逐项检查 python3、pip 与 RAG 服务器健康端点，并展示健康端点返回的详细信息。",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := rag.NewClient()
		rep := doctorReport{Endpoint: client.HealthURL()}

		if v := pyenv.Version(cmd.Context()); v != "" {
			rep.Checks = append(rep.Checks, doctorCheck{Name: "python3", OK: true, Details: v})
		} else {
			rep.Checks = append(rep.Checks, doctorCheck{Name: "python3", OK: false, Details: "未找到 python3 或无法解析版本"})
		}

		if bin, err := pip.Detect(); err == nil {
			rep.Checks = append(rep.Checks, doctorCheck{Name: "pip", OK: true, Details: bin})
		} else {
			rep.Checks = append(rep.Checks, doctorCheck{Name: "pip", OK: false, Details: "未找到 pip3/pip"})
		}

		if d, err := client.Health(cmd.Context()); err != nil {
			rep.Checks = append(rep.Checks, doctorCheck{Name: "rag-server", OK: false, Details: err.Error()})
		} else {
			c := doctorCheck{Name: "rag-server", OK: d.StatusCode >= 200 && d.StatusCode < 300}
			c.Details = fmt.Sprintf("HTTP %d", d.StatusCode)
			if len(d.Body) > 0 {
				var buf bytes.Buffer
				if json.Indent(&buf, d.Body, "", "  ") == nil {
					c.Details += "\n" + buf.String()
				}
			}
			rep.Checks = append(rep.Checks, c)
		}

		for _, c := range rep.Checks {
			if !c.OK {
				rep.Errors++
			}
		}

		if doctorJSON {
			// pretty JSON to stdout
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			for _, c := range rep.Checks {
				mark := "✓"
				if !c.OK {
					mark = "×"
				}
				details := c.Details
				if strings.Contains(details, "\n") {
					details = "\n    " + strings.ReplaceAll(details, "\n", "\n    ")
				}
				fmt.Printf("%s %-10s %s\n", mark, c.Name, details)
			}
			fmt.Printf("\nSummary: %d check(s), %d error(s)\n", len(rep.Checks), rep.Errors)
		}

		if rep.Errors > 0 {
			return fmt.Errorf("doctor failed: %d error(s)", rep.Errors)
		}
		return nil
	},
}
