// Package ann implements a small feed-forward neural network with one
// hidden layer and a single logistic output unit, trained by online
// (per-sample) stochastic gradient descent.
//
// A Network is an explicit instance: construct one with New, train it with
// Train, query it with Infer. Multiple independent networks can coexist.
// Networks are not safe for concurrent use; confine each instance to one
// goroutine.
//
// Example:
//
//	rng := ann.NewRand(12345)
//	net, err := ann.New(2, 6, ann.Logistic, rng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loss, err := net.Train(samples, targets, rows, ann.TrainOptions{})
//	out, err := net.Infer([]float32{1, 1})
package ann
