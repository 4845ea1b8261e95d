package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/livp123/failscan/internal/analyzer"
	"github.com/livp123/failscan/internal/metrics"
	"github.com/livp123/failscan/internal/report"
	"github.com/livp123/failscan/internal/utils/argutil"
	"github.com/livp123/failscan/internal/utils/logger"
	"github.com/livp123/failscan/internal/version"
	fserrors "github.com/livp123/failscan/pkg/errors"
)

const usageText = "Usage: failscan --file <path> [--threshold 5] [--classifier strict|tolerant|expr] [--expr <expression>] [--log-level warn] [--log-file <path>]"

// NewRootCmd builds the failscan command.
// Flag parsing is left to argutil so unknown --keys are accepted and ignored.
// NewRootCmd 构建 failscan 命令。
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "failscan --file <path> [--threshold N]",
		Short: "Summarize failed-login events in a log file",
		Long: `failscan reads a log file once, counts FAILED_LOGIN events per user and per
source IP, prints the top offenders and flags every user at or above the alert threshold.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, ParseOptions(args))
		},
	}
}

// Execute runs failscan with args and returns the process exit code.
// Execute 使用 args 运行 failscan 并返回进程退出码。
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra reads os.Args[1:] when given nil
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil && !errors.Is(err, fserrors.ErrUsage) {
		fmt.Fprintf(stderr, "❌ %v\n", err)
	}
	return fserrors.ExitCode(err)
}

func run(cmd *cobra.Command, opts Options) error {
	out := cmd.OutOrStdout()

	// --help and --version only apply without a file; otherwise they are ignored like any unknown key.
	if argutil.IsBlank(opts.File) {
		switch {
		case opts.Help:
			fmt.Fprintln(out, usageText)
			return nil
		case opts.Version:
			fmt.Fprintln(out, version.String())
			return nil
		default:
			fmt.Fprintln(out, usageText)
			return fserrors.NewUsageError("--file is required")
		}
	}

	classifier, err := analyzer.NewClassifier(opts.Classifier, opts.Expr)
	if err != nil {
		fmt.Fprintln(out, usageText)
		return err
	}

	logger.Init(logger.LoggingConfig{
		Level:      opts.LogLevel,
		Path:       opts.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	})
	defer func() { _ = logger.Sync() }()

	ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
	cmd.SetContext(ctx)
	log := logger.Get(ctx)

	log.Infow("scan started", "file", opts.File, "classifier", opts.Classifier, "threshold", opts.Threshold)

	reg := prometheus.NewRegistry()
	an := analyzer.New(classifier,
		analyzer.WithLogger(log),
		analyzer.WithMetrics(metrics.NewScanCollector(reg)),
	)

	result, err := an.AnalyzeFile(opts.File)
	if err != nil {
		log.Errorw("scan failed", "file", opts.File, "error", err)
		return err
	}

	if snap, err := metrics.Snapshot(reg); err == nil {
		kv := make([]interface{}, 0, 2*len(snap))
		for name, v := range snap {
			kv = append(kv, name, v)
		}
		log.Infow("scan complete", kv...)
	}

	return report.Render(out, opts.File, result, opts.Threshold)
}
