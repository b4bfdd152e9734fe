package server

// tmplDashboard extends the shared layout from internal/output.
const tmplDashboard = `{{define "content"}}
<h1>Visualisation Result</h1>

{{with .Flash}}<div class="flash">{{.}}</div>{{end}}

{{if not .Ready}}
{{range .Slots}}
<form class="dropzone{{if .Loaded}} loaded{{end}}" id="drop-{{.Class}}" action="/upload/{{.Class}}" method="post" enctype="multipart/form-data">
    <input type="file" name="file" accept=".json,application/json" onchange="this.form.submit()">
    {{if .Loaded}}
    <p>{{.Label}}: {{.Name}} ({{.Instances}} instances, {{fmtTime .LoadedAt}}). Drop another file to replace it.</p>
    {{else}}
    <p>Drag 'n' drop your {{.Label}} file here, or click to select files</p>
    {{end}}
</form>
{{end}}
<script>
for (const zone of document.querySelectorAll('.dropzone')) {
    const input = zone.querySelector('input[type=file]');
    zone.addEventListener('dragover', (e) => e.preventDefault());
    zone.addEventListener('drop', (e) => {
        e.preventDefault();
        if (e.dataTransfer.files.length === 0) return;
        input.files = e.dataTransfer.files;
        zone.submit();
    });
}
</script>
{{else}}
{{template "radar-charts" .Charts}}
<form action="/reset" method="post"><button type="submit">Load other files</button></form>
{{end}}
{{end}}`
