// Package commands builds the moodlog command tree.
package commands

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/terraincognita07/moodlog/internal/calendar"
	"github.com/terraincognita07/moodlog/internal/client"
	"github.com/terraincognita07/moodlog/internal/cliconfig"
	"github.com/terraincognita07/moodlog/internal/cliui"
	"github.com/terraincognita07/moodlog/internal/i18n"
	"github.com/terraincognita07/moodlog/internal/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errReported marks a failure the user has already seen as an alert.
var errReported = errors.New("reported")

// IsReported tells main not to print err a second time.
func IsReported(err error) bool {
	return errors.Is(err, errReported)
}

type reportedError struct {
	err error
}

func (err reportedError) Error() string { return err.err.Error() }

func (err reportedError) Unwrap() []error { return []error{err.err, errReported} }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// runtime is what every subcommand works with once flags and config are resolved.
type runtime struct {
	in      *os.File
	out     io.Writer
	errOut  io.Writer
	viper   *viper.Viper
	verbose bool

	config   cliconfig.Config
	logger   *zap.Logger
	sessions *session.Store
	api      *client.Client
	printer  *cliui.Printer
	language string
}

func New() *cobra.Command {
	return NewWithIO(os.Stdin, color.Output, os.Stderr)
}

// NewWithIO is New with explicit streams. in must be a file so the password
// prompt can switch off echo on a terminal.
func NewWithIO(in *os.File, out io.Writer, errOut io.Writer) *cobra.Command {
	rt := &runtime{in: in, out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:           "moodlog",
		Short:         "Record one emotion and a short note per day.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.String("base-url", "", "calendar store URL (config: base_url)")
	flags.Duration("timeout", 0, "request timeout (config: timeout)")
	flags.String("session-dir", "", "where the login session is kept (config: session_dir)")
	flags.String("lang", "", "message language, ko or en (config: language)")
	flags.BoolVarP(&rt.verbose, "verbose", "v", false, "log requests to stderr")

	addCommands(cmd, rt)
	return cmd
}

func addCommands(topLevel *cobra.Command, rt *runtime) {
	addLogin(topLevel, rt)
	addLogout(topLevel, rt)
	addRegister(topLevel, rt)
	addWhoami(topLevel, rt)
	addCalendar(topLevel, rt)
	addStats(topLevel, rt)
	addProfile(topLevel, rt)
	addConfig(topLevel, rt)
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	v, err := cliconfig.New()
	if err != nil {
		return err
	}
	flags := cmd.Root().PersistentFlags()
	bindings := map[string]string{
		cliconfig.KeyBaseURL:    "base-url",
		cliconfig.KeyTimeout:    "timeout",
		cliconfig.KeySessionDir: "session-dir",
		cliconfig.KeyLanguage:   "lang",
	}
	for key, flagName := range bindings {
		if flag := flags.Lookup(flagName); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	rt.viper = v

	config, err := cliconfig.Load(v)
	if err != nil {
		return err
	}
	rt.config = config

	rt.logger = newLogger(rt.errOut, rt.verbose)

	messages, err := i18n.NewEmbeddedManager(i18n.LangKO)
	if err != nil {
		return err
	}
	rt.language = config.Language
	if rt.language == "" {
		rt.language = messages.DetectFromLocale(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	}
	rt.printer = cliui.NewPrinter(rt.out, messages, rt.language)

	rt.sessions, err = session.Open(config.SessionDir)
	if err != nil {
		return err
	}

	rt.api, err = client.New(config.BaseURL, rt.sessions,
		client.WithTimeout(config.Timeout),
		client.WithLogger(rt.logger.Named("client")),
	)
	if err != nil {
		return err
	}

	rt.logger.Debug("configuration loaded",
		zap.String("base_url", config.BaseURL),
		zap.Duration("timeout", config.Timeout),
		zap.String("session_dir", config.SessionDir),
		zap.String("config_file", config.File),
		zap.String("language", rt.language),
	)
	return nil
}

func (rt *runtime) model() *calendar.Model {
	return calendar.NewModel(rt.api, rt.sessions,
		calendar.WithAlerter(rt.printer),
		calendar.WithLogger(rt.logger.Named("calendar")),
	)
}

// newLogger writes console logs to errOut. Only errors are shown unless verbose.
func newLogger(errOut io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(errOut)),
		level,
	)
	return zap.New(core)
}
