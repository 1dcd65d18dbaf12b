// Package cli provides the interactive EduShare command-line client.
//
// It wires configuration, the local session store, the REST API client and
// an interactive REPL. Typical flow: read the stored session, show the
// featured catalog, then execute user commands until exit.
//
// Key features:
//   - Login / Register / Logout / Whoami
//   - Catalog, Search, Show: browse resources
//   - Mine, Upload, Delete: teacher's own uploads
//   - Approve: admin only
//   - Export: write the current view as an HTML page
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
