package client

import (
	"bytes"
	"html/template"
	"io"
	"sync"

	"github.com/OnitiFR/yd/common"
)

// Actions are dispatched by the page script from data-action and
// data-filename, the markup never carries inline handlers.
var htmlTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"remain":      common.FormatRemain,
	"downloadURL": DownloadPath,
}).Parse(`
{{- define "files" -}}
<ul id="fileList">
{{- range . }}
<li>
<span class="filename">{{ .Filename }}</span>
<div class="file-actions">
<span class="remain">남은 시간: {{ remain .Remain }}</span>
<button type="button" class="btn download-btn" data-action="download" data-filename="{{ .Filename }}" data-href="{{ downloadURL .Filename }}">다운로드</button>
<button type="button" class="btn delete-btn" data-action="delete" data-filename="{{ .Filename }}">삭제</button>
</div>
</li>
{{- else }}
<li>` + EmptyListMessage + `</li>
{{- end }}
</ul>
{{ end -}}

{{- define "status" -}}
<div id="status" class="status {{ .Kind }}">{{ .Message }}</div>
{{ end -}}

{{- define "formats" -}}
<div class="format-options">
{{- range . }}
<span class="format-option{{ if .Selected }} selected{{ end }}" data-format="{{ .Format }}">{{ .Format }}</span>
{{- end }}
</div>
{{ end -}}

{{- define "busy" -}}
{{ if . }}<button id="downloadBtn" type="button" disabled>변환 중...</button>{{ else }}<button id="downloadBtn" type="button">변환 시작</button>{{ end }}
{{ end -}}

{{- define "notice" -}}
<div class="notice" role="alert">{{ . }}</div>
{{ end -}}
`))

// HTMLView renders page fragments to a writer, each View call producing
// one complete fragment. All text is escaped by html/template.
type HTMLView struct {
	mutex sync.Mutex
	out   io.Writer
	err   error
}

// NewHTMLView creates a view writing fragments to out
func NewHTMLView(out io.Writer) *HTMLView {
	return &HTMLView{out: out}
}

// Err returns the first rendering error, if any
func (v *HTMLView) Err() error {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.err
}

// fragments are rendered in memory first, so a failed template never
// leaves a partial fragment
func (v *HTMLView) render(name string, data interface{}) {
	var buf bytes.Buffer
	err := htmlTemplates.ExecuteTemplate(&buf, name, data)

	v.mutex.Lock()
	defer v.mutex.Unlock()
	if err == nil {
		_, err = v.out.Write(buf.Bytes())
	}
	if err != nil && v.err == nil {
		v.err = err
	}
}

// ShowStatus implements View
func (v *HTMLView) ShowStatus(kind StatusKind, message string) {
	v.render("status", struct {
		Kind    StatusKind
		Message string
	}{kind, message})
}

// SetBusy implements View
func (v *HTMLView) SetBusy(busy bool) {
	v.render("busy", busy)
}

// RenderFiles implements View
func (v *HTMLView) RenderFiles(files common.APIFileListEntries) {
	v.render("files", files)
}

// Notify implements View
func (v *HTMLView) Notify(message string) {
	v.render("notice", message)
}

// MarkFormat implements View
func (v *HTMLView) MarkFormat(options []FormatOption) {
	v.render("formats", options)
}
