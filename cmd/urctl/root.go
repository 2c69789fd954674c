package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	ur "github.com/iwtcode/urAdapter"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	envFile string
	host    string
}

// NewRootCmd собирает дерево команд urctl.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "urctl",
		Short:         "Управление роботом Universal Robots по TCP и передача движений в симулятор",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile == "" {
				return nil
			}
			if err := godotenv.Load(opts.envFile); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load %s: %v\n", opts.envFile, err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "путь к .env файлу")
	root.PersistentFlags().StringVar(&opts.host, "host", "", "адрес робота (по умолчанию UR_HOST)")

	root.AddCommand(
		newConnectCmd(opts),
		newSendCmd(opts),
		newExecCmd(opts),
		newExtractCmd(opts),
		newSimulateCmd(opts),
	)
	return root
}

// newClient загружает конфигурацию из окружения и создает клиента.
func newClient(opts *options) (*ur.Client, *ur.Config, error) {
	cfg := ur.Load()
	if opts.host != "" {
		cfg.Host = opts.host
	}
	c, err := ur.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return c, cfg, nil
}

// readScript читает сценарий из файла; пустой путь означает путь из конфигурации.
func readScript(path string, cfg *ur.Config) (string, error) {
	if path == "" {
		path = cfg.ScriptPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать сценарий %s: %w", path, err)
	}
	return string(data), nil
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// printAsJSON форматирует данные в JSON и выводит в w
func printAsJSON(w io.Writer, name string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Ошибка маршалинга JSON для %s: %v\n", name, err)
		return
	}
	fmt.Fprintf(w, "--- %s ---\n%s\n", name, string(jsonData))
}
