package runtime

// Code is the support library for lowered class fields. Lowered initializers
// reference these helpers by name as unbound symbols; the host compiler binds
// them when it links this code into the output.
const Code = `
	let __getProtoOf = Object.getPrototypeOf
	let __reflectGet = Reflect.get
	let __reflectSet = Reflect.set

	// Reads an inherited property for code that was moved out of its class
	// body. "cls" stands in for the class whose prototype chain holds the
	// property and "receiver" is the "this" seen by getters.
	export let __superGet = (cls, receiver, key) =>
		__reflectGet(__getProtoOf(cls), key, receiver)

	// The assignment counterpart. Evaluates to the assigned value so it can
	// replace an assignment expression in place.
	export let __superSet = (cls, receiver, key, value) =>
		(__reflectSet(__getProtoOf(cls), key, value, receiver), value)
`

// The "super" helpers go through Reflect instead of a plain property access
// because the property lookup must start at the prototype of the class, not
// at the class itself, and because setters on the chain must see the original
// receiver. A direct "__getProtoOf(cls)[key]" would get both wrong.

var helperNames = map[string]bool{
	"__superGet": true,
	"__superSet": true,
}

// IsHelperName reports whether Code defines a helper with this name.
func IsHelperName(name string) bool {
	return helperNames[name]
}
