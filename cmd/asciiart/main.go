package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/asciiart"
)

var errUsage = errors.New("missing image file")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	out := log.New(stdout, "", 0)
	errs := log.New(stderr, "", 0)

	// run reports the exit code itself; cli must neither print nor exit.
	cli.ErrWriter = stderr
	cli.OsExiter = func(int) {}

	var failure error
	app := newApp(out, errs, &failure)
	app.Writer = stdout
	err := app.Run(args)
	if err == nil {
		err = failure
	}
	if err == nil {
		return 0
	}

	if err == errUsage {
		errs.Printf("Usage: %s <image_file>", app.Name)
		errs.Printf("Example: %s image.jpg", app.Name)
	} else {
		errs.Printf("Error: %v", err)
	}
	return 1
}

// newApp builds the command. Errors from the conversion are stored in failure
// instead of being returned to cli, which would print them and exit itself.
func newApp(out, errs *log.Logger, failure *error) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "asciiart"
	app.Usage = "A command-line tool for rendering images as ASCII art text files."
	app.UsageText = "asciiart [options] <image_file>"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "Read settings from the YAML `FILE`. Flags override it.",
		},
		cli.IntFlag{
			Name:  "skip-x",
			Usage: "Sample every `N` pixels across.",
			Value: asciiart.DefaultSkipX,
		},
		cli.IntFlag{
			Name:  "skip-y",
			Usage: "Sample every `N` pixels down.",
			Value: asciiart.DefaultSkipY,
		},
		cli.StringFlag{
			Name:  "output-dir,o",
			Usage: "Write the art into `DIR`, creating it if needed.",
			Value: asciiart.DefaultOutputDir,
		},
		cli.StringFlag{
			Name:  "output-name",
			Usage: "`NAME` of the text file to write.",
			Value: asciiart.DefaultOutputName,
		},
		cli.IntFlag{
			Name:  "width,w",
			Usage: "Resize the image to `WIDTH` pixels before sampling. 0 keeps the original size.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: asciiart.DefaultSigmoidMidpoint,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.StringFlag{
			Name:  "preview,p",
			Usage: "Also render the art as a PNG at `FILE`.",
		},
		cli.StringFlag{
			Name:  "font",
			Usage: "TrueType `FILE` used for the preview. Defaults to a built-in bitmap face.",
		},
		cli.Float64Flag{
			Name:  "font-size",
			Usage: "Preview font `SIZE` in points.",
			Value: asciiart.DefaultFontSize,
		},
	}
	app.Action = func(c *cli.Context) error {
		*failure = convert(c, out, errs)
		return nil
	}
	return app
}

func convert(c *cli.Context, out, errs *log.Logger) error {
	input := c.Args().First()
	if input == "" {
		return errUsage
	}

	cfg, err := configure(c)
	if err != nil {
		return err
	}

	// Decode first: a bad input leaves no output behind.
	img, err := asciiart.OpenImage(input)
	if err != nil {
		return err
	}
	img = cfg.Adjust.Apply(img)
	buf := asciiart.FromImage(img)
	out.Printf("Loaded image: %dx%d channels: %d", buf.Width, buf.Height, buf.Channels)

	out.Printf("Processing image %dx%d...", buf.Width, buf.Height)
	grid, err := asciiart.Render(buf, asciiart.DefaultRamp, cfg.SkipX, cfg.SkipY)
	if err != nil {
		return err
	}

	sink := cfg.Sink()
	sink.Logger = errs
	path, err := sink.WriteGrid(grid)
	if err != nil {
		return err
	}
	out.Printf("ASCII art successfully saved to: %s", path)

	if cfg.Preview != "" {
		if err := writePreview(cfg, grid); err != nil {
			return err
		}
		out.Printf("Preview saved to: %s", cfg.Preview)
	}
	return nil
}

// flagSet is the part of *cli.Context that configure reads.
type flagSet interface {
	IsSet(name string) bool
	String(name string) string
	Int(name string) int
	Float64(name string) float64
	Bool(name string) bool
}

// configure merges the optional config file with any flags set explicitly.
func configure(c flagSet) (asciiart.Config, error) {
	cfg := asciiart.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = asciiart.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("skip-x") {
		cfg.SkipX = c.Int("skip-x")
	}
	if c.IsSet("skip-y") {
		cfg.SkipY = c.Int("skip-y")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("output-name") {
		cfg.OutputName = c.String("output-name")
	}
	if c.IsSet("width") {
		cfg.Adjust.Width = 0
		if w := c.Int("width"); w > 0 {
			cfg.Adjust.Width = uint(w)
		}
	}
	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.Adjust.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.Adjust.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.Bool("invert") {
		cfg.Adjust.Invert = true
	}
	if c.IsSet("preview") {
		cfg.Preview = c.String("preview")
	}
	if c.IsSet("font") {
		cfg.Font = c.String("font")
	}
	if c.IsSet("font-size") {
		cfg.FontSize = c.Float64("font-size")
	}
	return cfg, cfg.Validate()
}

func writePreview(cfg asciiart.Config, grid asciiart.Grid) error {
	preview := asciiart.NewPreview(nil)
	if cfg.Font != "" {
		face, err := asciiart.LoadFontFace(cfg.Font, cfg.FontSize)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		preview.Face = face
	}
	return preview.WriteFile(cfg.Preview, grid)
}
