package render

// pageTemplate is the full document. CSS and JS are injected as trusted
// static assets; everything data-driven goes through contextual escaping.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>SIGGRAPH Asia 2025 - Technical Papers</title>
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>🎬</text></svg>">
    <style>
{{.CSS}}
    </style>
</head>
<body>
    <div class="bg-pattern"></div>

    <header>
        <div class="logo">ACM SIGGRAPH</div>
        <h1>SIGGRAPH Asia 2025</h1>
        <p class="subtitle">Technical Papers Collection</p>

        <div class="meta-info">
            <span><span class="icon">📍</span> Hong Kong</span>
            <span><span class="icon">📅</span> December 13-19, 2025</span>
        </div>

        <div class="stats-bar">
            <div class="stat-item">
                <div class="stat-value">{{.TotalPapers}}</div>
                <div class="stat-label">Technical Papers</div>
            </div>
            <div class="stat-item">
                <div class="stat-value">{{.TotalSessions}}</div>
                <div class="stat-label">Sessions</div>
            </div>
        </div>
    </header>

    <main class="container">
{{range .Sessions}}        <section class="session">
            <div class="session-header">
                <h2>{{.Name}}</h2>
                <span class="session-count">{{len .Papers}} papers</span>
            </div>
            <div class="papers-grid">
{{range .Papers}}                <article class="paper-card" data-paper-id="{{.MetaID}}">
                    <div class="thumbnail-wrapper">
                        {{if .Image}}<img class="thumbnail" src="{{.Image}}" alt="" loading="lazy">{{else}}<div class="thumbnail placeholder">📄</div>{{end}}
                    </div>
                    <div class="card-content">
                        <h3>{{if .URL}}<a class="paper-title-link" href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h3>
                        {{if .Authors}}<p class="authors">{{.Authors}}</p>{{end}}
                        <div class="paper-actions">
                            <div class="paper-links">
                                {{if .URL}}<a class="paper-link" href="{{.URL}}" target="_blank" rel="noopener">
                                    🔗 Open link
                                    <span class="edit-icon-inline" onclick="event.preventDefault(); event.stopPropagation(); openEditModal('{{.MetaID}}', 'url', '{{.URL}}')" title="Edit URL">✏️</span>
                                </a>{{else}}<button class="edit-btn" onclick="openEditModal('{{.MetaID}}', 'url', '')" title="Add URL">✏️ Add link</button>{{end}}
                            </div>
                            <details class="abstract-toggle">
                                <summary>
                                    📖 Abstract
                                    <button class="edit-btn-inline" onclick="event.stopPropagation(); openEditModal('{{.MetaID}}', 'abstract', '{{.Abstract}}')" title="{{if .Abstract}}Edit Abstract{{else}}Add Abstract{{end}}">✏️</button>
                                </summary>
                                {{if .Abstract}}<div class="abstract-body">{{.Abstract}}</div>{{else}}<div class="abstract-body abstract-missing">Abstract not available yet (you can paste it into {{$.SidecarFile}}).</div>{{end}}
                            </details>
                        </div>
                    </div>
                </article>
{{end}}            </div>
        </section>
{{end}}    </main>

    <footer>
        <p>Data sourced from <a href="https://sa2025.conference-schedule.org/" target="_blank" rel="noopener">SIGGRAPH Asia 2025 Conference Schedule</a></p>
        <p style="margin-top: 0.5rem; opacity: 0.7;">Generated with Go</p>
    </footer>

    <!-- Edit Modal -->
    <div id="editModal" class="edit-modal">
        <div class="edit-modal-content">
            <div class="edit-modal-header">
                <h3 id="modalTitle">Edit</h3>
                <button class="edit-modal-close" onclick="closeEditModal()">&times;</button>
            </div>
            <div class="edit-modal-body">
                <label id="modalLabel" for="editInput">Value:</label>
                <input type="text" id="editInput" style="display: none;">
                <textarea id="editTextarea" style="display: none;"></textarea>
            </div>
            <div class="edit-modal-footer">
                <button class="edit-modal-btn cancel" onclick="closeEditModal()">Cancel</button>
                <button class="edit-modal-btn save" onclick="saveEdit()">Save</button>
            </div>
        </div>
    </div>

    <!-- Export Button -->
    <div class="export-btn-container">
        <button class="export-btn" onclick="exportToJson()">📥 Export {{.SidecarFile}}</button>
    </div>

    <script>
        const sidecarFile = '{{.SidecarFile}}';
{{.JS}}
    </script>
</body>
</html>
`
