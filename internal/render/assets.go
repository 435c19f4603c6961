package render

// pageCSS is the inline stylesheet for the generated page.
const pageCSS = `
:root {
    --bg-primary: #fef9f3;
    --bg-secondary: #fff5eb;
    --bg-card: #ffffff;
    --bg-card-hover: #fff8f0;
    --text-primary: #2d2a3e;
    --text-secondary: #6b6880;
    --accent: #ff6b6b;
    --accent-secondary: #4ecdc4;
    --accent-tertiary: #ffe66d;
    --accent-gradient: linear-gradient(135deg, #ff6b6b 0%, #feca57 50%, #4ecdc4 100%);
    --border: #f0e6dc;
    --shadow: rgba(255, 107, 107, 0.15);
}

@import url('https://fonts.googleapis.com/css2?family=Fredoka:wght@400;500;600;700&family=Nunito:wght@400;500;600;700&display=swap');

* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

html {
    scroll-behavior: smooth;
}

body {
    font-family: 'Nunito', -apple-system, BlinkMacSystemFont, sans-serif;
    background: var(--bg-primary);
    color: var(--text-primary);
    line-height: 1.7;
    min-height: 100vh;
    font-size: 17px;
}

.bg-pattern {
    position: fixed;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    background-image:
        radial-gradient(circle at 10% 20%, rgba(255, 107, 107, 0.12) 0%, transparent 50%),
        radial-gradient(circle at 90% 80%, rgba(78, 205, 196, 0.1) 0%, transparent 50%),
        radial-gradient(circle at 50% 50%, rgba(255, 230, 109, 0.08) 0%, transparent 60%);
    pointer-events: none;
    z-index: 0;
}

.container {
    max-width: 1500px;
    margin: 0 auto;
    padding: 2rem;
    position: relative;
    z-index: 1;
}

header {
    text-align: center;
    padding: 5rem 2rem 4rem;
    position: relative;
}

header::before {
    content: '';
    position: absolute;
    top: -50px;
    left: 50%;
    transform: translateX(-50%);
    width: 500px;
    height: 500px;
    background: radial-gradient(ellipse at center, rgba(255, 230, 109, 0.25) 0%, transparent 70%);
    pointer-events: none;
    border-radius: 50%;
}

.logo {
    font-family: 'Fredoka', sans-serif;
    font-size: 1rem;
    letter-spacing: 0.2em;
    text-transform: uppercase;
    color: var(--accent);
    margin-bottom: 1.5rem;
    font-weight: 600;
}

header h1 {
    font-family: 'Fredoka', sans-serif;
    font-size: 4.5rem;
    font-weight: 700;
    letter-spacing: -0.02em;
    background: var(--accent-gradient);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
    margin-bottom: 0.75rem;
    line-height: 1.1;
}

header .subtitle {
    font-family: 'Fredoka', sans-serif;
    font-size: 1.6rem;
    font-weight: 500;
    color: var(--text-secondary);
    margin-bottom: 2rem;
}

.meta-info {
    display: inline-flex;
    align-items: center;
    gap: 2rem;
    padding: 1rem 2rem;
    background: var(--bg-card);
    border: 2px solid var(--border);
    border-radius: 100px;
    font-size: 1rem;
    box-shadow: 0 4px 20px var(--shadow);
}

.meta-info span {
    display: flex;
    align-items: center;
    gap: 0.5rem;
    color: var(--text-secondary);
    font-weight: 600;
}

.meta-info .icon {
    font-size: 1.2rem;
}

.stats-bar {
    display: flex;
    justify-content: center;
    gap: 4rem;
    margin-top: 3rem;
    padding-top: 2rem;
    border-top: 2px dashed var(--border);
}

.stat-item {
    text-align: center;
}

.stat-value {
    font-family: 'Fredoka', sans-serif;
    font-size: 3.5rem;
    font-weight: 700;
    background: var(--accent-gradient);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
    line-height: 1;
}

.stat-label {
    font-size: 0.9rem;
    text-transform: uppercase;
    letter-spacing: 0.1em;
    color: var(--text-secondary);
    margin-top: 0.5rem;
    font-weight: 600;
}

.session {
    margin-bottom: 4rem;
}

.session-header {
    display: flex;
    align-items: center;
    gap: 1rem;
    margin-bottom: 2rem;
    padding-bottom: 1rem;
    border-bottom: 3px dashed var(--border);
}

.session-header::before {
    content: '\2726';
    font-size: 1.5rem;
    color: var(--accent);
}

.session h2 {
    font-family: 'Fredoka', sans-serif;
    font-size: 1.7rem;
    font-weight: 600;
    flex: 1;
    color: var(--text-primary);
}

.session-count {
    font-size: 0.9rem;
    font-weight: 700;
    color: var(--accent);
    background: rgba(255, 107, 107, 0.1);
    padding: 0.5rem 1.2rem;
    border-radius: 100px;
    border: 2px solid rgba(255, 107, 107, 0.2);
}

.papers-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(340px, 1fr));
    gap: 1.75rem;
}

.paper-card {
    background: var(--bg-card);
    border-radius: 20px;
    overflow: hidden;
    border: 2px solid var(--border);
    transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
    display: flex;
    flex-direction: column;
    box-shadow: 0 4px 15px rgba(0, 0, 0, 0.05);
}

.paper-card:hover {
    transform: translateY(-8px) rotate(-0.5deg);
    box-shadow:
        0 20px 40px rgba(255, 107, 107, 0.15),
        0 0 0 3px rgba(255, 107, 107, 0.1);
    border-color: var(--accent);
}

.thumbnail-wrapper {
    position: relative;
    width: 100%;
    padding-top: 56.25%;
    overflow: hidden;
    background: var(--bg-secondary);
}

.thumbnail {
    position: absolute;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    object-fit: cover;
    transition: transform 0.5s cubic-bezier(0.4, 0, 0.2, 1);
}

.paper-card:hover .thumbnail {
    transform: scale(1.1);
}

.thumbnail.placeholder {
    display: flex;
    align-items: center;
    justify-content: center;
    font-size: 3.5rem;
    color: var(--border);
    background: linear-gradient(135deg, var(--bg-secondary) 0%, var(--bg-card) 100%);
}

.card-content {
    padding: 1.5rem;
    flex: 1;
    display: flex;
    flex-direction: column;
}

.paper-card h3 {
    font-family: 'Fredoka', sans-serif;
    font-size: 1.1rem;
    font-weight: 600;
    line-height: 1.4;
    margin-bottom: 0.85rem;
    display: -webkit-box;
    -webkit-line-clamp: 3;
    -webkit-box-orient: vertical;
    overflow: hidden;
    color: var(--text-primary);
}

.authors {
    font-size: 0.95rem;
    color: var(--text-secondary);
    line-height: 1.6;
    margin-top: auto;
    display: -webkit-box;
    -webkit-line-clamp: 2;
    -webkit-box-orient: vertical;
    overflow: hidden;
    font-weight: 500;
}

.paper-title-link {
    color: inherit;
    text-decoration: none;
}

.paper-title-link:hover {
    text-decoration: underline;
    text-decoration-thickness: 3px;
    text-underline-offset: 3px;
    text-decoration-color: rgba(255, 107, 107, 0.7);
}

.paper-actions {
    display: flex;
    gap: 0.5rem;
    margin-top: 1rem;
    padding-top: 1rem;
    border-top: 2px dashed var(--border);
    align-items: center;
    flex-wrap: wrap;
}

.paper-links {
    display: flex;
    gap: 0.5rem;
}

.abstract-toggle {
    margin-top: 0;
    padding-top: 0;
    border-top: none;
}

.abstract-toggle summary {
    list-style: none;
    cursor: pointer;
    display: inline-flex;
    align-items: center;
    gap: 0.5rem;
    padding: 0.45rem 0.9rem;
    border-radius: 100px;
    background: rgba(255, 230, 109, 0.25);
    border: 2px solid rgba(255, 230, 109, 0.45);
    font-weight: 800;
    font-size: 0.9rem;
    color: var(--text-primary);
    user-select: none;
}

.abstract-toggle summary::-webkit-details-marker {
    display: none;
}

.abstract-toggle summary:hover {
    transform: scale(1.03);
}

.abstract-toggle .abstract-body {
    margin-top: 0.75rem;
    padding: 0.9rem 1rem;
    background: rgba(78, 205, 196, 0.08);
    border: 2px solid rgba(78, 205, 196, 0.18);
    border-radius: 14px;
    color: var(--text-primary);
    font-size: 0.98rem;
    line-height: 1.7;
    white-space: pre-wrap;
}

.abstract-toggle .abstract-missing {
    opacity: 0.75;
    font-style: italic;
}

.paper-link {
    display: inline-flex;
    align-items: center;
    gap: 0.4rem;
    padding: 0.5rem 1rem;
    border-radius: 100px;
    font-size: 0.85rem;
    font-weight: 800;
    text-decoration: none;
    transition: all 0.2s ease;
    background: rgba(78, 205, 196, 0.12);
    color: #0f766e;
    border: 2px solid rgba(78, 205, 196, 0.35);
    position: relative;
}

.paper-link:hover {
    transform: scale(1.04);
    background: rgba(78, 205, 196, 0.18);
}

.paper-link .edit-icon-inline {
    margin-left: 0.3rem;
    padding: 0.2rem 0.4rem;
    background: rgba(255, 107, 107, 0.2);
    border-radius: 50%;
    font-size: 0.7rem;
    cursor: pointer;
    transition: all 0.2s ease;
    display: inline-flex;
    align-items: center;
    justify-content: center;
}

.paper-link .edit-icon-inline:hover {
    background: rgba(255, 107, 107, 0.35);
    transform: scale(1.15);
}

.edit-btn, .edit-btn-inline {
    background: rgba(255, 107, 107, 0.15);
    border: 2px solid rgba(255, 107, 107, 0.35);
    border-radius: 100px;
    padding: 0.4rem 0.7rem;
    font-size: 0.75rem;
    font-weight: 700;
    color: #c62828;
    cursor: pointer;
    transition: all 0.2s ease;
    display: inline-flex;
    align-items: center;
    gap: 0.3rem;
    margin-left: 0.3rem;
}

.edit-btn:hover, .edit-btn-inline:hover {
    background: rgba(255, 107, 107, 0.25);
    transform: scale(1.05);
}

.edit-btn-inline {
    margin-left: 0.5rem;
    padding: 0.25rem 0.5rem;
    font-size: 0.7rem;
}

.abstract-toggle summary {
    display: flex;
    align-items: center;
    justify-content: space-between;
}

/* Edit Modal */
.edit-modal {
    display: none;
    position: fixed;
    top: 0;
    left: 0;
    right: 0;
    bottom: 0;
    background: rgba(0, 0, 0, 0.6);
    z-index: 1000;
    align-items: center;
    justify-content: center;
    padding: 2rem;
}

.edit-modal.active {
    display: flex;
}

.edit-modal-content {
    background: var(--bg-card);
    border: 3px solid var(--accent);
    border-radius: 20px;
    padding: 2rem;
    max-width: 600px;
    width: 100%;
    max-height: 80vh;
    overflow-y: auto;
    box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
}

.edit-modal-header {
    display: flex;
    justify-content: space-between;
    align-items: center;
    margin-bottom: 1.5rem;
    padding-bottom: 1rem;
    border-bottom: 2px dashed var(--border);
}

.edit-modal-header h3 {
    font-family: 'Fredoka', sans-serif;
    font-size: 1.3rem;
    color: var(--text-primary);
    margin: 0;
}

.edit-modal-close {
    background: rgba(255, 107, 107, 0.2);
    border: 2px solid rgba(255, 107, 107, 0.4);
    border-radius: 100px;
    width: 2rem;
    height: 2rem;
    display: flex;
    align-items: center;
    justify-content: center;
    cursor: pointer;
    font-size: 1.2rem;
    color: var(--accent);
    transition: all 0.2s ease;
}

.edit-modal-close:hover {
    background: rgba(255, 107, 107, 0.3);
    transform: scale(1.1);
}

.edit-modal-body {
    margin-bottom: 1.5rem;
}

.edit-modal-body label {
    display: block;
    font-weight: 700;
    margin-bottom: 0.5rem;
    color: var(--text-primary);
    font-size: 0.9rem;
}

.edit-modal-body input,
.edit-modal-body textarea {
    width: 100%;
    padding: 0.75rem;
    border: 2px solid var(--border);
    border-radius: 12px;
    font-family: 'Nunito', sans-serif;
    font-size: 0.95rem;
    background: var(--bg-secondary);
    color: var(--text-primary);
    resize: vertical;
}

.edit-modal-body textarea {
    min-height: 150px;
    line-height: 1.6;
}

.edit-modal-body input:focus,
.edit-modal-body textarea:focus {
    outline: none;
    border-color: var(--accent);
    box-shadow: 0 0 0 3px rgba(255, 107, 107, 0.1);
}

.edit-modal-footer {
    display: flex;
    gap: 0.75rem;
    justify-content: flex-end;
}

.edit-modal-btn {
    padding: 0.6rem 1.5rem;
    border-radius: 100px;
    font-weight: 700;
    font-size: 0.9rem;
    cursor: pointer;
    transition: all 0.2s ease;
    border: 2px solid;
}

.edit-modal-btn.save {
    background: rgba(78, 205, 196, 0.2);
    border-color: rgba(78, 205, 196, 0.4);
    color: #0f766e;
}

.edit-modal-btn.save:hover {
    background: rgba(78, 205, 196, 0.3);
    transform: scale(1.05);
}

.edit-modal-btn.cancel {
    background: rgba(255, 107, 107, 0.1);
    border-color: rgba(255, 107, 107, 0.3);
    color: var(--text-secondary);
}

.edit-modal-btn.cancel:hover {
    background: rgba(255, 107, 107, 0.2);
}

.export-btn-container {
    position: fixed;
    bottom: 2rem;
    right: 2rem;
    z-index: 100;
}

.export-btn {
    background: var(--accent-gradient);
    color: white;
    border: none;
    border-radius: 100px;
    padding: 1rem 1.5rem;
    font-family: 'Fredoka', sans-serif;
    font-weight: 700;
    font-size: 0.9rem;
    cursor: pointer;
    box-shadow: 0 4px 20px rgba(255, 107, 107, 0.3);
    transition: all 0.2s ease;
}

.export-btn:hover {
    transform: translateY(-2px);
    box-shadow: 0 6px 25px rgba(255, 107, 107, 0.4);
}

footer {
    text-align: center;
    padding: 3rem 2rem;
    margin-top: 2rem;
    border-top: 3px dashed var(--border);
    color: var(--text-secondary);
    font-size: 1rem;
}

footer a {
    color: var(--accent);
    text-decoration: none;
    font-weight: 600;
}

footer a:hover {
    text-decoration: underline;
}

@media (max-width: 768px) {
    header h1 {
        font-size: 2.8rem;
    }

    .papers-grid {
        grid-template-columns: 1fr;
    }

    .stats-bar {
        gap: 2rem;
    }

    .meta-info {
        flex-direction: column;
        gap: 0.75rem;
    }
}
`

// pageJS is the inline browser script. Edits are kept in localStorage keyed
// by paper id and field, reflected into the DOM immediately, and the export
// button merges them into a freshly fetched copy of the sidecar file and
// triggers a download. Nothing is ever written back to a server.
const pageJS = `
let currentEdit = {paperId: null, field: null};
const editsKey = 'siggraph_paper_edits';

function openEditModal(paperId, field, currentValue) {
    currentEdit.paperId = paperId;
    currentEdit.field = field;

    const modal = document.getElementById('editModal');
    const title = document.getElementById('modalTitle');
    const label = document.getElementById('modalLabel');
    const input = document.getElementById('editInput');
    const textarea = document.getElementById('editTextarea');

    if (field === 'url') {
        title.textContent = 'Edit URL';
        label.textContent = 'URL:';
        input.style.display = 'block';
        textarea.style.display = 'none';
        input.value = currentValue || '';
        input.focus();
    } else if (field === 'abstract') {
        title.textContent = 'Edit Abstract';
        label.textContent = 'Abstract:';
        input.style.display = 'none';
        textarea.style.display = 'block';
        textarea.value = currentValue || '';
        textarea.focus();
    }

    modal.classList.add('active');
}

function closeEditModal() {
    document.getElementById('editModal').classList.remove('active');
    currentEdit.paperId = null;
    currentEdit.field = null;
}

function saveEdit() {
    if (!currentEdit.paperId || !currentEdit.field) return;

    const input = document.getElementById('editInput');
    const textarea = document.getElementById('editTextarea');
    const value = currentEdit.field === 'url' ? input.value.trim() : textarea.value.trim();

    // Save to localStorage
    let edits = JSON.parse(localStorage.getItem(editsKey) || '{}');
    if (!edits[currentEdit.paperId]) {
        edits[currentEdit.paperId] = {};
    }
    edits[currentEdit.paperId][currentEdit.field] = value;
    localStorage.setItem(editsKey, JSON.stringify(edits));

    // Update the UI immediately
    updateUI(currentEdit.paperId, currentEdit.field, value);

    closeEditModal();
}

function updateUI(paperId, field, value) {
    const card = document.querySelector('[data-paper-id="' + paperId + '"]');
    if (!card) return;

    if (field === 'url') {
        const linkDiv = card.querySelector('.paper-links');
        if (value) {
            const link = linkDiv.querySelector('.paper-link');
            if (link) {
                link.href = value;
                // Update or add edit icon inside the link
                let editIcon = link.querySelector('.edit-icon-inline');
                if (!editIcon) {
                    editIcon = document.createElement('span');
                    editIcon.className = 'edit-icon-inline';
                    editIcon.title = 'Edit URL';
                    editIcon.textContent = '✏️';
                    link.appendChild(editIcon);
                }
                editIcon.onclick = (e) => {
                    e.preventDefault();
                    e.stopPropagation();
                    openEditModal(paperId, 'url', value);
                };
            } else {
                const newLink = document.createElement('a');
                newLink.className = 'paper-link';
                newLink.href = value;
                newLink.target = '_blank';
                newLink.rel = 'noopener';
                newLink.textContent = '🔗 Open link';
                const editIcon = document.createElement('span');
                editIcon.className = 'edit-icon-inline';
                editIcon.title = 'Edit URL';
                editIcon.textContent = '✏️';
                editIcon.onclick = (e) => {
                    e.preventDefault();
                    e.stopPropagation();
                    openEditModal(paperId, 'url', value);
                };
                newLink.appendChild(editIcon);
                linkDiv.replaceChildren(newLink);
            }
        }
        // Update title link too
        const titleLink = card.querySelector('.paper-title-link');
        if (titleLink) {
            titleLink.href = value;
        }
    } else if (field === 'abstract') {
        const details = card.querySelector('.abstract-toggle');
        if (details) {
            const body = details.querySelector('.abstract-body');
            if (body) {
                body.textContent = value || 'Abstract not available yet (you can paste it into ' + sidecarFile + ').';
                body.classList.toggle('abstract-missing', !value);
            }
        }
    }
}

function exportToJson() {
    const edits = JSON.parse(localStorage.getItem(editsKey) || '{}');
    if (Object.keys(edits).length === 0) {
        alert('No edits to export! Make some edits first.');
        return;
    }

    // Load original sidecar structure and merge edits into it
    fetch(sidecarFile)
        .then(r => r.json())
        .then(original => {
            const updated = original.map(entry => {
                const pid = entry.id;
                if (edits[pid]) {
                    if (edits[pid].url !== undefined) entry.url = edits[pid].url;
                    if (edits[pid].abstract !== undefined) entry.abstract = edits[pid].abstract;
                }
                return entry;
            });

            // Download as JSON file
            const blob = new Blob([JSON.stringify(updated, null, 2)], {type: 'application/json'});
            const url = URL.createObjectURL(blob);
            const a = document.createElement('a');
            a.href = url;
            a.download = sidecarFile;
            a.click();
            URL.revokeObjectURL(url);
        })
        .catch(() => {
            alert('Could not load ' + sidecarFile + '. Edits saved to localStorage only.');
        });
}

// Load edits from localStorage on page load
window.addEventListener('DOMContentLoaded', () => {
    const edits = JSON.parse(localStorage.getItem(editsKey) || '{}');
    for (const [paperId, fields] of Object.entries(edits)) {
        if (fields.url !== undefined) updateUI(paperId, 'url', fields.url);
        if (fields.abstract !== undefined) updateUI(paperId, 'abstract', fields.abstract);
    }
});

// Close modal on background click
document.getElementById('editModal').addEventListener('click', (e) => {
    if (e.target.id === 'editModal') closeEditModal();
});
`
