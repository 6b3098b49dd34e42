package transforms

import "strings"

// Names that resolve in the execution environment itself and are therefore
// never routed through the rendering context, independent of scope.
// "require" is a module-system compatibility shim and "arguments" the active
// function's argument object; both are kept for parity with the hosting
// environment and can be dropped by supplying TransformOptions.AllowedGlobals.
const allowedGlobalNames = "Infinity,undefined,NaN,isFinite,isNaN," +
	"parseFloat,parseInt,decodeURI,decodeURIComponent,encodeURI," +
	"encodeURIComponent,Math,Number,Date,Array,Object,Boolean,String," +
	"RegExp,Map,Set,JSON,Intl,BigInt,require,arguments"

// Literal keywords that denote values, not identifier references
const literalConstantNames = "true,false,null,this"

var (
	defaultAllowedGlobals = makeSet(allowedGlobalNames)
	literalConstants      = makeSet(literalConstantNames)
)

func makeSet(names string) map[string]bool {
	set := map[string]bool{}
	for _, name := range strings.Split(names, ",") {
		set[name] = true
	}
	return set
}

// DefaultAllowedGlobals returns a copy of the default global allow-list,
// for callers that want to extend it rather than replace it
func DefaultAllowedGlobals() map[string]bool {
	set := make(map[string]bool, len(defaultAllowedGlobals))
	for name := range defaultAllowedGlobals {
		set[name] = true
	}
	return set
}
