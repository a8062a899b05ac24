// Package maze runs the whole image → graph pipeline in one call.
//
// What:
//
//   - Parse takes a decoded pixel.Buffer through five stages and returns a
//     Result holding the palette, the two markers, the resolved endpoints
//     and the linked mazegraph.Graph.
//   - ParseImage does the same for any image.Image.
//
// Stages:
//
//	StageBorder     border.Classify            ring colors and markers
//	StageValidate   border.Validate            every pixel inside the palette
//	StageEndpoints  border.ResolveEndpoints    start and end
//	StageClassify   topology.RelevantPositions graph-relevant pixels
//	StageLink       mazegraph.Build            nodes and links
//
// Each stage reports a StageEvent (elapsed time and an item count) to the
// hook registered with WithOnStage, after it succeeds. A failing stage
// reports nothing and Parse returns its error unchanged, so callers match
// the sentinels of the package that raised it with errors.Is.
//
// Options:
//
//   - WithContext:  cancellation, checked before every stage.
//   - WithWorkers:  goroutines used by StageClassify and StageLink.
//   - WithTieBreak: policy for equidistant markers (see border.TieBreak).
//   - WithOnStage:  progress hook.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
package maze
