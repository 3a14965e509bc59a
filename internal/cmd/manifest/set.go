package manifest

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/winpack/cli/internal/cmdtypes"
	"github.com/winpack/cli/internal/cmdutil"
	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
)

// setOptions holds the flags for the set command.
type setOptions struct {
	packageName     string
	appName         string
	publisher       string
	version         string
	description     string
	appID           string
	startPage       string
	backgroundColor string
	orientation     string

	write cmdutil.WriteFlags
}

// setter applies one flag to a manifest.
type setter struct {
	flag  string
	apply func(m *manifest.Manifest, opts *setOptions) error
}

// setters run in this order; the first failure stops the command and nothing
// is written.
var setters = []setter{
	{"package-name", func(m *manifest.Manifest, o *setOptions) error {
		_, err := m.SetPackageName(o.packageName)
		return err
	}},
	{"publisher", func(m *manifest.Manifest, o *setOptions) error {
		id, err := m.Identity()
		if err != nil {
			return err
		}
		_, err = id.SetPublisher(o.publisher)
		return err
	}},
	{"version", func(m *manifest.Manifest, o *setOptions) error {
		id, err := m.Identity()
		if err != nil {
			return err
		}
		_, err = id.SetVersion(o.version)
		return err
	}},
	{"app-name", func(m *manifest.Manifest, o *setOptions) error {
		_, err := m.SetAppName(o.appName)
		return err
	}},
	{"description", func(m *manifest.Manifest, o *setOptions) error {
		props, err := m.Properties()
		if err != nil {
			return err
		}
		props.SetDescription(o.description)
		if o.description == "" {
			return nil
		}
		visual, err := m.VisualElements()
		if err != nil {
			return err
		}
		_, err = visual.SetDescription(o.description)
		return err
	}},
	{"app-id", func(m *manifest.Manifest, o *setOptions) error {
		app, err := m.Application()
		if err != nil {
			return err
		}
		_, err = app.SetID(o.appID)
		return err
	}},
	{"start-page", func(m *manifest.Manifest, o *setOptions) error {
		app, err := m.Application()
		if err != nil {
			return err
		}
		_, err = app.SetStartPage(o.startPage)
		return err
	}},
	{"background-color", func(m *manifest.Manifest, o *setOptions) error {
		visual, err := m.VisualElements()
		if err != nil {
			return err
		}
		_, err = visual.SetBackgroundColor(o.backgroundColor)
		return err
	}},
	{"orientation", func(m *manifest.Manifest, o *setOptions) error {
		visual, err := m.VisualElements()
		if err != nil {
			return err
		}
		_, err = visual.SetOrientation(o.orientation)
		return err
	}},
}

// NewSetCmd creates the manifest set command.
func NewSetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &setOptions{}

	c := &cobra.Command{
		Use:   "set [FILE]",
		Short: "Set manifest fields",
		Long: `Set identity, properties, application and visual element fields of a
manifest. Only the flags given are applied.

Versions are padded to four components. --app-name sets the display name,
the visual display name and the default tile short name. An empty
--description removes the package description. Colors accept #RRGGBB,
#AARRGGBB, 0xAARRGGBB or "transparent". Orientation is one of default,
portrait, landscape or all.

Examples:
  winpack manifest set --package-name org.example.app --version 1.2
  winpack manifest set --background-color 0xFF336699 --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSet(c, cfg, opts, args)
		},
	}

	c.Flags().StringVar(&opts.packageName, "package-name", "", "Package identity name")
	c.Flags().StringVar(&opts.appName, "app-name", "", "Application display name")
	c.Flags().StringVar(&opts.publisher, "publisher", "", "Package publisher (e.g. CN=Example)")
	c.Flags().StringVar(&opts.version, "version", "", "Package version")
	c.Flags().StringVar(&opts.description, "description", "", "Package and tile description")
	c.Flags().StringVar(&opts.appID, "app-id", "", "Application id (truncated to 64 characters)")
	c.Flags().StringVar(&opts.startPage, "start-page", "", "Application start page")
	c.Flags().StringVar(&opts.backgroundColor, "background-color", "", "Tile background color")
	c.Flags().StringVar(&opts.orientation, "orientation", "", "Initial rotation preference: "+strings.Join(manifest.OrientationNames, ", "))
	opts.write.AddTo(c)

	return c
}

func runSet(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *setOptions, args []string) error {
	var selected []setter
	for _, s := range setters {
		if c.Flags().Changed(s.flag) {
			selected = append(selected, s)
		}
	}
	if len(selected) == 0 {
		return cmdutil.ReportError("nothing to set", oerrors.NewValidationError(
			"no fields given", "", "", "Pass at least one field flag, see --help"))
	}

	m, err := loadManifest(cfg, args)
	if err != nil {
		return err
	}

	logger := output.ManifestLogger(m.Path())
	for _, s := range selected {
		if err := s.apply(m, opts); err != nil {
			return cmdutil.ReportError("setting "+s.flag, err)
		}
		logger.Debug("set field", "flag", s.flag)
	}

	return writeBack(c, []*manifest.Manifest{m}, opts.write.DryRun)
}
