// Package stories holds the story catalog: named, argument-driven examples
// of every component that the gallery, the exporter and the CLI render.
//
// A catalog is a YAML document:
//
//	version: 1
//	stories:
//	  - id: toast-error
//	    title: Toast / Error
//	    kind: toast
//	    args:
//	      variant: error
//	      message: The file could not be uploaded.
//	      delay: 3s
//
// Each kind has its own argument struct (ToastArgs, CarouselArgs, ...)
// validated with the shared validator from internal/config. Build turns a
// story into an Instance whose toasts, carousel and autoplay run on the
// given scheduler; call Teardown when the view goes away.
package stories
