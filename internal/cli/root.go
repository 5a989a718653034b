package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ragctl/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "ragctl",
	Short: "ragctl – NVIDIA RAG 聊天应用启动器",
	Long:  "ragctl 启动 RAG 聊天应用：选择启动模式、安装依赖、探测远程 RAG 服务器，然后把控制台移交给聊天应用。",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the launch sequence
		return launcher.New().Run(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
