package export

import (
	"fmt"
	"html/template"
	"os"

	"github.com/sadopc/moodcal/internal/diary"
)

// ToHTML writes the printable diary document: a cover page, the
// current-month calendar grid, and one page per entry with its page badge.
// The layout relies on print page-break rules; on screen it degrades to a
// single scrolling document.
func ToHTML(doc diary.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html file: %w", err)
	}
	defer f.Close()

	if err := diaryTemplate.Execute(f, doc); err != nil {
		return fmt.Errorf("render diary html: %w", err)
	}
	return nil
}

var diaryTemplate = template.Must(template.New("diary").Funcs(template.FuncMap{
	// Entry images are data URIs produced by the store; mark them safe so
	// html/template does not strip them from src attributes.
	"dataURI": func(s string) template.URL { return template.URL(s) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>My Mood Diary - moodcal</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: 'Segoe UI', Roboto, Arial, sans-serif; background: #fff; color: #222; line-height: 1.7; }
  @page { margin: 0; }

  .cover-page { min-height: 100vh; display: grid; grid-template-rows: 110px 1fr 110px; text-align: center; page-break-after: always; background: #fff; }
  .cover-top, .cover-bottom { background-color: #3F51B5; }
  .cover-center { display: flex; flex-direction: column; justify-content: center; align-items: center; padding: 16px; }
  .cover-center h1 { font-size: 2.3rem; font-weight: 700; color: #3F51B5; margin-bottom: 8px; }
  .cover-center p { font-size: 1.1rem; color: #3F51B5; }
  .cover-generated { margin-top: 10px; font-size: 0.9rem; color: #777; }

  .print-month { page-break-after: always; padding: 0.5in 0.2in; }
  .print-month-title { font-size: 1.6rem; font-weight: 800; color: #374151; margin: 0 0 16px; text-align: center; }
  .print-cal-grid { display: grid; grid-template-columns: repeat(7, 1fr); gap: 6px; }
  .cal-hdr { text-align: center; font-weight: 700; color: #4b5563; padding: 8px 0; border-bottom: 2px solid #e5e7eb; }
  .cal-cell { border: 1px solid #e5e7eb; border-radius: 8px; min-height: 78px; padding: 6px; display: flex; flex-direction: column; align-items: center; background: #fff; }
  .cal-empty { background: #fafafa; }
  .cal-day { align-self: flex-start; font-weight: 700; color: #111827; }
  .cal-emoji { font-size: 1.6rem; margin-top: 6px; }

  .diary-page { page-break-after: always; position: relative; overflow: hidden; min-height: 100vh; }
  .page-content { padding: 0.8in; padding-bottom: calc(0.8in + 28px); }
  .entry-header { color: #3F51B5; font-weight: 600; font-size: 1.1rem; margin-bottom: 6px; }
  .entry-mood { font-size: 1rem; color: #3F51B5; margin-bottom: 15px; }
  .entry-story { font-size: 1rem; text-align: justify; white-space: pre-wrap; margin-bottom: 15px; overflow-wrap: break-word; }
  .entry-image { display: block; max-width: 100%; border-radius: 8px; margin: 0 auto 16px; }
  .page-badge { position: absolute; bottom: 0.5in; right: 0.5in; background: #6366f1; color: #fff; padding: 6px 10px; border-radius: 8px; font-weight: 700; font-size: 12px; }

  @media print { body { margin: 0; } .cover-page, .diary-page { page-break-inside: avoid; } }
  @media screen { .page-badge { display: none; } }
</style>
</head>
<body>
<div class="cover-page">
  <div class="cover-top"></div>
  <div class="cover-center">
    <h1>{{.Cover.Title}}</h1>
    <p>By: {{.Cover.Author}}</p>
    <p class="cover-generated">Generated on {{.Cover.Generated}}</p>
  </div>
  <div class="cover-bottom"></div>
</div>

<section class="print-month">
  <h2 class="print-month-title">{{.Month.Title}}</h2>
  <div class="print-cal-grid">
    <div class="cal-hdr">Sun</div><div class="cal-hdr">Mon</div><div class="cal-hdr">Tue</div><div class="cal-hdr">Wed</div><div class="cal-hdr">Thu</div><div class="cal-hdr">Fri</div><div class="cal-hdr">Sat</div>
    {{range .Month.Cells}}{{if .Empty}}<div class="cal-cell cal-empty"></div>{{else}}<div class="cal-cell"><div class="cal-day">{{.Day}}</div>{{if .Emoji}}<div class="cal-emoji">{{.Emoji}}</div>{{end}}</div>{{end}}{{end}}
  </div>
</section>

{{range .Pages}}
<div class="diary-page">
  <div class="page-content">
    <div class="entry-header">{{.DateLong}}</div>
    <div class="entry-mood">{{.MoodEmoji}} {{.MoodLabel}}</div>
    <div class="entry-story">{{.Story}}</div>
    {{if .Image}}<img src="{{dataURI .Image}}" alt="Memory" class="entry-image">{{end}}
  </div>
  <div class="page-badge">Page {{.Number}}</div>
</div>
{{end}}
</body>
</html>
`))
