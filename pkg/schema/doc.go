// Package schema defines the per-component-type configuration the generator
// consults while walking a content tree: field descriptors keyed by prop
// name, output-name overrides, import specs, skip flags, and props-transform
// hooks. Configurations can be declared in code or loaded from YAML/JSON
// documents; hooks are always attached in code afterwards.
package schema
