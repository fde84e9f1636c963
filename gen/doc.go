// Package gen produces random 4x4 sliding-tile boards at one of four
// difficulty levels (spec.md §4.1). Configuration follows the teacher's
// functional-options style (builder.BuilderOption / newBuilderConfig):
// a genConfig resolved from zero or more Options, with a nil RNG meaning
// deterministic behavior rather than an error.
package gen
