// Package dialects registers every built-in module AST dialect.
//
// Import it for side effects:
//
//	import _ "github.com/leapstack-labs/esmgen/pkg/dialects"
package dialects

import (
	_ "github.com/leapstack-labs/esmgen/pkg/dialects/acorn"    // Register acorn dialect
	_ "github.com/leapstack-labs/esmgen/pkg/dialects/estree"   // Register estree dialect
	_ "github.com/leapstack-labs/esmgen/pkg/dialects/proposal" // Register proposal dialect
)

// Default is the dialect used when none is configured.
const Default = "acorn"
