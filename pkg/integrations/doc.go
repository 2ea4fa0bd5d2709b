// Package integrations provides HTTP clients for the upstream services a
// comparison depends on.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [github]: profile, repository and contribution-calendar data
//   - [openai]: chat completions for roast generation
//
// # Shared Infrastructure
//
// [NewHTTPClient] builds the *http.Client every subpackage uses. It attaches
// the bearer token (when one is configured) and reports each request to the
// [observability] HTTP hooks. [CheckStatus] maps raw status codes onto the
// [ErrNotFound], [ErrRateLimited] and [ErrNetwork] sentinels.
//
// # Retries
//
// There are none. A failed call is reported to the caller, which decides
// whether the failure is isolated (one repository) or fatal (identity,
// calendar). Outbound clients carry no timeout of their own; the caller's
// context bounds every request.
//
// [github]: github.com/matzehuels/gitroast/pkg/integrations/github
// [openai]: github.com/matzehuels/gitroast/pkg/integrations/openai
// [observability]: github.com/matzehuels/gitroast/pkg/observability
package integrations
