// Package spatial provides geometric value types for video games - vectors, quaternions,
// bases, transforms, rects, and colors. Every type is a plain value; functions that modify
// them return copies, so you can method-chain safely.
package spatial
