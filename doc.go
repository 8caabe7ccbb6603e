/*
Package curvefit fits piecewise-cubic Bezier splines to ordered 2-D point
sequences. It provides a batch fitter (Fit) that reduces and fits a finished
point list in one call, and an incremental builder (CurveBuilder,
SplineBuilder) that accepts points one at a time and keeps only the most
recent segment ("the tail") subject to re-fitting or splitting.

The least-squares cubic solve, Newton-Raphson reparameterization, tangent
estimation, and recursive split-on-max-error strategy are shared between
both entry points through the unexported fitState kernel.
*/
package curvefit
