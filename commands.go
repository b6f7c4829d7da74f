package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spaghettifunk/kinema/engine/core"
	"github.com/spaghettifunk/kinema/engine/math"
	"github.com/spaghettifunk/kinema/engine/scene"
	"github.com/spaghettifunk/kinema/engine/tween"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	cfg        core.Config
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: core.DefaultConfig()}

	root := &cobra.Command{
		Use:           "kinema",
		Short:         "Inspect transform hierarchies and animations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "kinema.toml", "Path to the TOML configuration")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides the configuration")

	root.AddCommand(
		a.resolveCommand(),
		a.watchCommand(),
		a.tweenCommand(),
		a.colorCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := core.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	if err := core.SetLogLevel(level); err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	core.LogDebug("configuration loaded from %s", a.configPath)
	return nil
}

func (a *app) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <scene.toml|scene.yaml|scene.gltf>",
		Short: "Print the global transform of every node in a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			return printGraph(cmd.OutOrStdout(), g, a.cfg.Math.Epsilon)
		},
	}
}

func (a *app) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <scene.toml|scene.yaml|scene.gltf>",
		Short: "Resolve a scene again every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w, err := scene.NewWatcher(args[0], func(g *scene.Graph, err error) {
				if err != nil {
					core.LogError("%s", err)
					return
				}
				fmt.Fprintf(out, "# %s\n", args[0])
				if err := printGraph(out, g, a.cfg.Math.Epsilon); err != nil {
					core.LogError("%s", err)
				}
			})
			if err != nil {
				return err
			}
			core.LogInfo("watching %s, press ctrl+c to stop", args[0])
			return w.Run(cmd.Context())
		},
	}
}

func (a *app) tweenCommand() *cobra.Command {
	var (
		from, to string
		yaw      float32
		scale    float32
		frames   int
	)
	cmd := &cobra.Command{
		Use:   "tween",
		Short: "Print the frames of a spring animation between two poses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVec3(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end, err := parseVec3(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			cfg := a.cfg.Tween
			if cmd.Flags().Changed("frames") {
				if frames < 0 {
					return fmt.Errorf("--frames must not be negative, got %d", frames)
				}
				cfg.Frames = frames
			}
			target := math.NewTransform(
				end,
				math.NewQuatFromAxisAngle(math.NewVec3Up(), math.DegreeToRadian(yaw)),
				math.NewVec3(scale, scale, scale),
			)
			animator := tween.NewAnimator(math.NewTransformFromPosition(start), target, cfg)
			animator.Epsilon = a.cfg.Math.Epsilon

			// springs keep moving after the linear part ends, allow them time to settle
			return printFrames(cmd.OutOrStdout(), animator.Frames(cfg.Frames+cfg.FPS*10), a.cfg.Math.Epsilon)
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0,0", "Start position as x,y,z")
	cmd.Flags().StringVar(&to, "to", "0,0,0", "Target position as x,y,z")
	cmd.Flags().Float32Var(&yaw, "yaw", 0, "Target rotation around the up axis, in degrees")
	cmd.Flags().Float32Var(&scale, "scale", 1, "Target uniform scale")
	cmd.Flags().IntVar(&frames, "frames", 60, "Frames over which rotation and scale progress")
	return cmd
}

func (a *app) colorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color <name|#rgb|#rrggbb|#rrggbbaa>",
		Short: "Print the linear values of an sRGB color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := math.ParseColor(args[0])
			if err != nil {
				return err
			}
			return printColor(cmd.OutOrStdout(), c)
		},
	}
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var values [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		values[i] = float32(f)
	}
	return math.NewVec3(values[0], values[1], values[2]), nil
}

// clean turns values within epsilon of zero into zero so they do not print
// as -0.000.
func clean(v math.Vec3, epsilon float32) math.Vec3 {
	for _, f := range []*float32{&v.X, &v.Y, &v.Z} {
		if math.IsNumberZero(*f, epsilon) {
			*f = 0
		}
	}
	return v
}

func formatVec3(v math.Vec3, epsilon float32) string {
	v = clean(v, epsilon)
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func eulerDegrees(q math.Quaternion) math.Vec3 {
	e := q.GetAsEulerAngles()
	return math.NewVec3(math.RadianToDegree(e.X), math.RadianToDegree(e.Y), math.RadianToDegree(e.Z))
}

func printGraph(w io.Writer, g *scene.Graph, epsilon float32) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tPARENT\tPOSITION\tROTATION (deg)\tSCALE")

	resolved := g.Resolve()
	names := make(map[string]string, len(resolved))
	for _, r := range resolved {
		names[r.ID.String()] = r.Name
	}
	for _, r := range resolved {
		parent := names[r.Parent.String()]
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			parent,
			formatVec3(r.Global.Position, epsilon),
			formatVec3(eulerDegrees(r.Global.Rotation), epsilon),
			formatVec3(r.Global.Scale, epsilon),
		)
	}
	return tw.Flush()
}

func printFrames(w io.Writer, frames []math.Transform, epsilon float32) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FRAME\tPOSITION\tROTATION (deg)\tSCALE")
	for i, f := range frames {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			formatVec3(f.Position, epsilon),
			formatVec3(eulerDegrees(f.Rotation), epsilon),
			formatVec3(f.Scale, epsilon),
		)
	}
	return tw.Flush()
}

func printColor(w io.Writer, c math.Color) error {
	srgb := c.GetAsGammaByteRGBA()
	h, s, v := c.GetHSV()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "sRGB\t#%02x%02x%02x%02x\n", srgb.R, srgb.G, srgb.B, srgb.A)
	fmt.Fprintf(tw, "linear\t(%.4f, %.4f, %.4f, %.4f)\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(tw, "hsv\t(%.1f, %.3f, %.3f)\n", h, s, v)
	fmt.Fprintf(tw, "luminance\t%.4f\n", c.GetLuminance())
	fmt.Fprintf(tw, "exposure\t%.3f EV\n", c.ComputeHdrExposureValue())
	return tw.Flush()
}
