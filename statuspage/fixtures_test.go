package statuspage

const apacheStatusPage = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 3.2 Final//EN">
<html><head>
<title>Apache Status</title>
</head><body>
<h1>Apache Server Status for localhost (via 127.0.0.1)</h1>
<dl><dt>Server Version: Apache/2.4.57 (Debian)</dt></dl>
<table rules="all" cellpadding="1%">
<tr><th>Not</th><th>The</th><th>Requests</th></tr>
<tr><td>1</td><td>2</td><td>3</td></tr>
</table>
<table border="0"><tr><th>Srv</th><th>PID</th><th>M</th><th>Client</th><th>VHost</th><th>Request</th></tr>

<tr><td><b>0-0</b></td><td>1201</td><td><b>W</b></td>
<td>203.0.113.5</td><td nowrap>example.com:80</td><td nowrap>GET /wp-admin/login.php HTTP/1.1</td></tr>

<tr><td><b>1-0</b></td><td>1202</td><td>_</td>
<td>198.51.100.9</td><td nowrap>example.com:80</td><td nowrap>GET /index.html
 HTTP/1.1</td></tr>

<tr><td><b>2-0</b></td><td>1203</td><td><b>R</b></td>
<td></td><td nowrap></td><td nowrap></td></tr>

<tr><td><b>3-0</b></td><td>1204</td><td><b>W</b></td>
<td>::1</td><td nowrap>localhost:80</td><td nowrap>GET /server-status HTTP/1.1</td></tr>
</table>
<hr />
<table>
<tr><th>Srv</th><td>Child Server number - generation</td></tr>
</table>
</body></html>
`

const pageWithoutRequestTable = `<html><body><h1>It works!</h1><table><tr><th>a</th></tr><tr><td>1</td></tr></table></body></html>`
