package skin

// Kind of component. Variable components have separate images per layout
// symbol, static ones share a single image set, redirects reuse images of
// another component.
// ENUM(variable, static, redirect)
type ComponentKind int
