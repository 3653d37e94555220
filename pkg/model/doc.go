// Package model defines the field descriptor types shared by the template
// builder, the input router, and the render seams.
package model
