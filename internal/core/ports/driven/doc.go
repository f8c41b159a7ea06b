// Package driven declares what the core needs from infrastructure.
//
// ContentStore and ConfigStore must be provided. The rest may be nil:
//
//   - ImageResolver: images fall back to a placeholder URL
//   - Highlighter: code blocks keep only their raw source
//   - Clipboard: copy requests are logged and dropped
//   - ContentValidator: decoded items are used as is
//   - ContentMirror: only `vabank sync` writes to it
//
// Nothing here imports an adapter; only domain types cross the boundary.
package driven
