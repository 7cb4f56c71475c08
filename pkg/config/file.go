package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# appheader configuration

# The name of the application.
# This is the name that will be displayed on the status bar.
name: "{{ .Name }}"

# Header configuration.
header:
  # Title overrides the title of the focused screen.
  #title: "{{ .Header.Title }}"

  # The left control. It opens the drawer unless the caller overrides it.
  left:
    icon: "{{ .Header.Left.Icon }}"
    # Valid families are listed by "appheader icons".
    icon_family: "{{ .Header.Left.Family }}"
    # Sizes of 24 and up render bold.
    icon_size: {{ .Header.Left.Size }}
    # A color name, a hex value, or an ANSI color index.
    icon_color: "{{ .Header.Left.Color }}"
    disabled: {{ .Header.Left.Disabled }}

  # The right control. It raises an alert unless the caller overrides it.
  right:
    icon: "{{ .Header.Right.Icon }}"
    icon_family: "{{ .Header.Right.Family }}"
    icon_size: {{ .Header.Right.Size }}
    icon_color: "{{ .Header.Right.Color }}"
    disabled: {{ .Header.Right.Disabled }}

# Terminal UI configuration.
ui:
  # Frame rate of the press animation.
  fps: {{ .UI.FPS }}
  # How long alerts stay on screen. Use 0 to keep them until the next one.
  alert_timeout: "{{ .UI.AlertTimeout }}"
  # Enable mouse support.
  mouse: {{ .UI.Mouse }}

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  #path: "{{ .Log.Path }}"

# Screens listed in the drawer. The first one is shown first.
screens:
{{- range .Screens }}
  - name: "{{ .Name }}"
{{- if .Label }}
    label: "{{ .Label }}"
{{- end }}
{{- if .Title }}
    title: "{{ .Title }}"
{{- end }}
{{- if .Body }}
    body: "{{ .Body }}"
{{- end }}
{{- if .LeftIcon }}
    left_icon: "{{ .LeftIcon }}"
{{- end }}
{{- if .LeftIconFamily }}
    left_icon_family: "{{ .LeftIconFamily }}"
{{- end }}
{{- if .RightIcon }}
    right_icon: "{{ .RightIcon }}"
{{- end }}
{{- if .RightIconFamily }}
    right_icon_family: "{{ .RightIconFamily }}"
{{- end }}
{{- end }}

# Additional glyphs per icon family.
#glyphs:
#  Feather:
#    star: "★"
`))

func newConfigFile(cfg *Config) string {
	var b bytes.Buffer
	configFileTmpl.Execute(&b, cfg) // nolint: errcheck
	return b.String()
}
