package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/bridge-deploy/internal/domain/config"
	"github.com/trebuchet-org/bridge-deploy/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the persisted configuration with secrets masked
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No deployment config found at %s\n", getRelativePath(result.ConfigPath))
		fmt.Fprintln(r.out, "⚠️  Values will be read from the environment or prompted for on the next run")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintln(r.out)
	r.renderValues(result.Config)
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

func (r *ConfigRenderer) renderValues(cfg *config.DeployConfig) {
	t := newTable(r.out)
	t.AppendHeader(table.Row{
		headerStyle.Sprint("KEY"),
		headerStyle.Sprint("ENV"),
		headerStyle.Sprint("VALUE"),
	})
	for _, f := range config.Fields() {
		value, ok := cfg.Get(f.Key)
		display := faintStyle.Sprint("(not set)")
		if ok {
			display = f.Mask(value)
		}
		t.AppendRow(table.Row{string(f.Key), faintStyle.Sprint(f.EnvVar), display})
	}
	t.Render()
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if result.Cleared {
		fmt.Fprintln(r.out, FormatSuccess("Removed deployment config"))
		fmt.Fprintf(r.out, "📁 deleted: %s\n", getRelativePath(result.ConfigPath))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s from config (it will be resolved again on the next run)", result.Key)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
