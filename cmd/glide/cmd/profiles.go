package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/glide"
)

var profilesFormat string

var profilesCmd = &cobra.Command{
	Use:   "profiles [NAME...]",
	Short: "List physics profiles",
	Long: `List the registered physics profiles and their constants.

Examples:
  glide profiles                  # Table of every profile
  glide profiles fluid -o yaml    # One profile as YAML, ready for --config`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.Flags().StringVarP(&profilesFormat, "output", "o", "table", "output format: table, json, or yaml")
}

type namedProfile struct {
	Name    string               `json:"name" yaml:"name"`
	Profile glide.PhysicsProfile `json:"profile" yaml:"profile"`
}

func runProfiles(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = glide.Presets()
	}
	list := make([]namedProfile, 0, len(names))
	for _, name := range names {
		p, ok := glide.LookupProfile(name)
		if !ok {
			return fmt.Errorf("%w: %q", glide.ErrUnknownPreset, name)
		}
		list = append(list, namedProfile{Name: name, Profile: p})
	}

	out := cmd.OutOrStdout()
	switch profilesFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(list)
	case "table":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tPAN FRICTION\tPAN LERP\tSNAP BACK\tRUBBER BAND\tZOOM FRICTION\tZOOM LERP\tZOOM SNAP\tPINCH BAND")
		for _, np := range list {
			p := np.Profile
			fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n", np.Name,
				p.PanFriction, p.PanLerpFactor, p.SnapBackStiffness, p.RubberBandStiffness,
				p.ZoomFriction, p.ZoomLerpFactor, p.ZoomSnapBackStiffness, p.PinchRubberBandStiffness)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", profilesFormat)
	}
}
