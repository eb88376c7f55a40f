package api

import (
	"html/template"
	"net/http"

	"github.com/dgallion1/devisqa/internal/agent"
)

type pageData struct {
	Error   string
	Answers []agent.Answer
	Form    analysisParams
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error("render page", "error", err)
	}
}

var pageTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8" />
  <title>devisqa</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 2rem; background: #f5f5f5; }
    form, .card { background: #fff; padding: 1.25rem; border-radius: 8px;
      box-shadow: 0 1px 3px rgba(0,0,0,.08); margin-bottom: 1.5rem; }
    label { display: block; margin-top: 1rem; font-weight: bold; }
    input, textarea { width: 100%; padding: .5rem; margin-top: .5rem;
      border: 1px solid #ccc; border-radius: 4px; box-sizing: border-box; }
    button { margin-top: 1.5rem; padding: .75rem 1.5rem; background: #2563eb;
      border: none; border-radius: 4px; color: #fff; cursor: pointer; }
    .error { background: #fee2e2; color: #b91c1c; border: 1px solid #fecaca;
      padding: 1rem; border-radius: 6px; margin-bottom: 1.5rem; }
    .answer { white-space: pre-wrap; }
  </style>
</head>
<body>
  <h1>devisqa</h1>
  <p>Analysez un devis PDF avec une question et obtenez des réponses par projet.</p>
  <form action="/analyze" method="post" enctype="multipart/form-data">
    <label for="pdf">Fichier PDF</label>
    <input id="pdf" name="pdf" type="file" accept="application/pdf" required />
    <label for="question">Question</label>
    <textarea id="question" name="question" required>{{.Form.Question}}</textarea>
    <label for="section">Section</label>
    <input id="section" name="section" type="text" value="{{.Form.Section}}" placeholder="ex: 25" />
    <label for="top_k">Top K</label>
    <input id="top_k" name="top_k" type="number" min="1" value="{{.Form.TopK}}" />
    <label for="chunk_size">Taille des chunks</label>
    <input id="chunk_size" name="chunk_size" type="number" min="100" value="{{.Form.ChunkSize}}" />
    <label for="overlap">Chevauchement</label>
    <input id="overlap" name="overlap" type="number" min="0" value="{{.Form.Overlap}}" />
    <label for="model">Modèle</label>
    <input id="model" name="model" type="text" value="{{.Form.Model}}" />
    <button type="submit">Lancer l'analyse</button>
  </form>
  {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
  {{range .Answers}}
  <section class="card">
    <h3>{{.Project}}</h3>
    <p><strong>Confiance :</strong> {{printf "%.2f" .Confidence}}</p>
    <p class="answer">{{.Answer}}</p>
    <details>
      <summary>Sources</summary>
      <ul>
        {{range .Sources}}<li>Page {{.PageNumber}} (score {{printf "%.2f" .Score}})</li>{{else}}<li>Aucune source</li>{{end}}
      </ul>
    </details>
  </section>
  {{end}}
</body>
</html>
`))
