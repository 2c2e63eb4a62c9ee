package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stenoproject/plojo/command"
	"github.com/stenoproject/plojo/config"
	"github.com/stenoproject/plojo/controller"
	"github.com/stenoproject/plojo/dictionary"
	"github.com/stenoproject/plojo/machine"
	"github.com/stenoproject/plojo/stroke"
	"github.com/stenoproject/plojo/translator"
)

var dispatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Opens the configured machine and controller and drives the translate/undo loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()

		cfg, err := config.LoadConfig(directory)
		if err != nil {
			return err
		}

		dict, err := loadDictionary(cfg)
		if err != nil {
			return err
		}

		m, err := openMachine(cfg)
		if err != nil {
			return err
		}

		var retrospective []stroke.Stroke
		for _, s := range cfg.RetrospectiveAddSpaceStrokes {
			retrospective = append(retrospective, stroke.New(s))
		}
		var spaceInsert *stroke.Stroke
		if cfg.SpaceStroke != "" {
			s := stroke.New(cfg.SpaceStroke)
			spaceInsert = &s
		}

		tr := translator.New(dict, nil, retrospective, spaceInsert, cfg.SpaceAfter)

		var dispatcher controller.Controller
		if dispatch {
			dispatcher = controller.New(false)
		}

		disableStrokes := make(map[stroke.Stroke]bool)
		for _, s := range cfg.DisableInputStrokes {
			disableStrokes[stroke.New(s)] = true
		}
		disabled := false

		for {
			s, err := m.Read()
			if err == machine.ErrDisconnected {
				logger.Error("machine disconnected, exiting")
				return nil
			}
			if err == machine.ErrTimedOut {
				continue
			}
			if _, ok := err.(*machine.MalformedPacketError); ok {
				logger.WithError(err).Warn("malformed packet, ignoring")
				continue
			}
			if err != nil {
				return err
			}

			if disableStrokes[s] {
				disabled = !disabled
				m.Disable()
				continue
			}
			if disabled {
				continue
			}

			var produced []command.Command
			if s.IsUndo() {
				produced = tr.Undo()
			} else {
				produced = tr.Translate(s)
			}

			for _, c := range produced {
				if tc, ok := c.(command.TranslatorCommand); ok {
					tr.HandleCommand(tc.Name)
					continue
				}
				if dispatch {
					dispatcher.Dispatch(c)
				} else {
					logger.WithField("command", c).Info("command not dispatched")
				}
			}
		}
	},
}

func init() {
	runCmd.Flags().BoolVar(&dispatch, "dispatch", false, "actually dispatch commands to the controller instead of only logging them")
	rootCmd.AddCommand(runCmd)
}

func loadDictionary(cfg config.Config) (*dictionary.Dictionary, error) {
	var sources []dictionary.Source
	for _, path := range cfg.Dicts {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, dictionary.Source{Name: path, JSON: string(data)})
	}
	return dictionary.New(sources)
}

func openMachine(cfg config.Config) (machine.Machine, error) {
	switch cfg.InputMachine.Kind {
	case config.Stdin, "":
		return machine.NewStdin(os.Stdin), nil
	case config.GeminiPR:
		f, err := os.Open(cfg.InputMachine.Port)
		if err != nil {
			return nil, err
		}
		return machine.NewGeminiPR(f), nil
	case config.Keyboard:
		return machine.NewKeyboard()
	default:
		return machine.NewStdin(os.Stdin), nil
	}
}
