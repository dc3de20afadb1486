// Package blob generates the animation of an organic loading indicator: a
// closed, smoothly curved blob that morphs between random silhouettes while
// rotating.
//
// The package contains no drawing code of its own beyond optional helpers. Its
// output is, for every tick, an SVG path in a fixed 100×100 frame and a
// rotation angle. Consumers place the path in an element of whatever size they
// like and rotate it.
//
// # Shapes
//
// A [Shape] is a ring of [ControlPoint] values in polar coordinates. The
// angles are spaced evenly and identical across all shapes with the same
// number of points; only the radii vary. [Sample] produces random shapes,
// perturbing the nominal radius of 1 by up to a configurable jitter.
//
// [Smooth] turns a shape into a closed sequence of cubic Béziers
// ([curve.CubicBez]) that passes through every control point, using a
// Catmull-Rom spline converted to Bézier form. [Path] and [WritePath] format
// those segments as an SVG path of the form
//
//	M x,y C x1,y1 x2,y2 x,y … Z
//
// # Animation
//
// A [Morph] interpolates the radii of a current shape towards those of a
// target shape, eased with [Ease]. When a morph completes, the target becomes
// the current shape and a new target is sampled. A [Rotation] turns at a
// constant rate independently of the morph.
//
// A [Loop] ties the two together. It subscribes to a [Scheduler], advances the
// morph and the rotation by the time that passed since the previous tick, as
// measured by a [Clock], and publishes a [Frame]. [TickerScheduler] and
// [SystemClock] run in real time; [VirtualClock] implements both interfaces
// and only advances when told to, which is useful for tests and for rendering
// animations offline.
//
// # Output
//
// Besides the raw path, frames can be written as standalone SVG documents
// ([Frame.WriteSVG]) or rasterized into alpha masks ([Rasterize]).
package blob
