package templates

import (
	"bufio"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify"

	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var logger = logrus.StandardLogger().WithField("module", "templates")

var (
	//go:embed *
	Files embed.FS
)

var templateCache = make(map[string]*template.Template)
var templateCacheMux = &sync.RWMutex{}
var templateFuncs = utils.GetTemplateFuncs()

// GetTemplate compiles (or returns the cached) template for the given files.
// In debug mode templates are re-read from disk on every call.
func GetTemplate(files ...string) *template.Template {
	name := strings.Join(files, "-")

	if utils.Config.Frontend.Debug {
		templateFiles := make([]string, len(files))
		for i := range files {
			templateFiles[i] = "templates/" + files[i]
		}
		return template.Must(template.New(name).Funcs(templateFuncs).ParseFiles(templateFiles...))
	}

	templateCacheMux.RLock()
	cached := templateCache[name]
	templateCacheMux.RUnlock()
	if cached != nil {
		return cached
	}

	tmpl := template.New(name).Funcs(templateFuncs)
	for _, file := range files {
		fileContent, err := readTemplateFile(file)
		if err != nil {
			logger.Panicf("error reading template %v: %v", file, err)
		}
		tmpl = template.Must(tmpl.New(path.Base(file)).Parse(fileContent))
	}

	templateCacheMux.Lock()
	templateCache[name] = tmpl
	templateCacheMux.Unlock()
	return tmpl
}

func readTemplateFile(file string) (string, error) {
	b, err := fs.ReadFile(Files, file)
	if err != nil {
		return "", err
	}

	if utils.Config.Frontend.Minify {
		m := minify.New()
		m.AddFunc("text/html", minifyTemplate)
		b, err = m.Bytes("text/html", b)
		if err != nil {
			return "", err
		}
	}
	return string(b), nil
}

func minifyTemplate(m *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	// strip newlines and collapse runs of spaces
	trailing := regexp.MustCompile(`([ \t]+)?[\r\n]+`)
	spaces := regexp.MustCompile(`([ \t])[ \t]+`)
	rb := bufio.NewReader(r)
	for {
		line, err := rb.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = trailing.ReplaceAllString(line, "")
		line = spaces.ReplaceAllString(line, " ")
		if _, errws := io.WriteString(w, line); errws != nil {
			return errws
		}
		if err == io.EOF {
			break
		}
	}
	return nil
}
