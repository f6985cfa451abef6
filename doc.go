// Package sluice provides composable push-based streams for Go that simplify data
// pipelines, batching, and parallel processing. Pipelines are assembled from small
// reusable stages and driven lazily, with centralized error handling and precise
// control over the number of workers.
//
// # Streams
//
// In this package, a stream is a function that pushes items into a callback
// supplied by the consumer; see [Stream]. Streams are lazy: building a pipeline
// does no work until some blocking function at the end drives it. When an
// "empty stream" is referred to, it means a stream that ends without yielding
// any items.
//
// Most functions in this package share common behaviors and characteristics,
// which are described below.
//
// # Stage functions
//
// Functions such as [Map], [Filter], and [Batch] take a stream as an input and
// return a new stream as an output. They do not process anything themselves and
// return the output stream immediately. Errors from the input stream, as well as
// errors returned by user-provided functions, end the output stream and are
// propagated further down the pipeline.
//
// Such functions are designed to be composed together to build complex
// processing pipelines:
//
//	stage2 := sluice.Map(input, ...)
//	stage3 := sluice.Batch(stage2, ...)
//	stage4 := sluice.Map(stage3, ...)
//	results := sluice.Unbatch(stage4)
//	// consume the results and handle errors with some blocking function
//
// # Blocking functions
//
// Functions such as [ForEach], [Fold] and [ToSlice] are used at the last stage
// of the pipeline to drive it and return the final result or error.
//
// These functions block until one of the following conditions is met:
//   - The end of the stream is reached. In this case, the function returns the
//     final result.
//   - An error is encountered either in the input stream or in some
//     user-provided function. In this case, the function returns the error.
//
// Some of them, such as [First] or [Any], can also stop the pipeline early,
// before the end of the input stream. Stages cooperate with early stops:
// upstream work ceases shortly after, and sources backed by external resources
// release them. A stream must not be driven more than once unless its source
// is re-drivable, like [FromSlice] or [Range].
//
// # Parallel jobs
//
// Stage functions drive the pipeline on a single goroutine. For CPU-heavy or
// i/o bound work, a section of the pipeline can be executed by a pool of
// workers instead. [Fork] lifts a stream into a parallel job, [ParMap] and
// [ParFilter] attach stages to it, and [Join] turns the job back into a regular
// stream that runs the attached stages on a fixed number of workers.
//
//	job := sluice.Fork(input)
//	job = sluice.ParFilter(job, ...)
//	enriched := sluice.ParMap(job, ...)
//	results := sluice.Join(enriched, 8)
//
// Parallel jobs deliver results as soon as they are ready, so the output order
// generally does not match the input order. With a single worker the order is
// preserved. Regardless of timing, the same input always produces the same set
// of results. Item buffering inside a job is bounded in proportion to the
// number of workers, which applies backpressure to the upstream and keeps
// memory usage flat even on unbounded inputs.
//
// # Error handling
//
// Error handling can be non-trivial in concurrent applications. Sluice
// simplifies this by providing a structured error handling approach. As
// described above, all errors are automatically propagated down the pipeline to
// the final stage, where they can be caught. This allows the pipeline to
// terminate after the first error is encountered and return it to the caller.
// Errors are returned as is, so sentinel errors survive the trip through the
// pipeline and can be tested with errors.Is at the final stage. An early stop
// requested by a consumer is not an error: the pipeline simply ends.
package sluice
