package ann

import "fmt"

// Training defaults. Train uses these whenever the corresponding option is
// left zero.
const (
	DefaultEpochs       = 300
	DefaultLearningRate = 0.01
	// DefaultTargetLoss is the early-stopping threshold: training ends as
	// soon as an epoch's mean squared error drops below it.
	DefaultTargetLoss = 0.001
)

// TrainOptions configures a training run. The zero value selects the
// defaults (300 epochs, learning rate 0.01, early stop below 0.001).
type TrainOptions struct {
	// Epochs is the number of passes over the sample set.
	Epochs int
	// LearningRate is the per-sample gradient-descent step size.
	LearningRate float32
	// TargetLoss is the early-stopping threshold on epoch loss.
	TargetLoss float32
	// LossHistory, when non-nil, receives each epoch's loss at that
	// epoch's index. It must hold at least Epochs elements. If training
	// stops early at epoch k, every slot from k on is filled with the
	// final loss, so the buffer always ends fully populated.
	LossHistory []float32
}

func (o *TrainOptions) applyDefaults() {
	if o.Epochs == 0 {
		o.Epochs = DefaultEpochs
	}
	if o.LearningRate == 0 {
		o.LearningRate = DefaultLearningRate
	}
	if o.TargetLoss == 0 {
		o.TargetLoss = DefaultTargetLoss
	}
}

// Train runs online stochastic gradient descent over a fixed sample set.
//
// samples is a rows×InputSize matrix in row-major order and targets holds
// one scalar per row. Each epoch visits every sample once in order (no
// shuffling), running a forward and a backward pass per sample; the epoch
// loss is the mean squared error over the set. Training stops after
// opts.Epochs epochs or as soon as an epoch's loss drops below
// opts.TargetLoss, and returns the final epoch's loss.
//
// Weights mutate in place; calling Train again continues from the current
// weights rather than reinitializing.
func (n *Network) Train(samples, targets []float32, rows int, opts TrainOptions) (float32, error) {
	if !n.initialized {
		return 0, ErrNotInitialized
	}
	if rows < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRowCount, rows)
	}
	if len(samples) < rows*n.inputSize {
		return 0, fmt.Errorf("%w: sample matrix holds %d values, want %d", ErrDimensionMismatch, len(samples), rows*n.inputSize)
	}
	if len(targets) < rows {
		return 0, fmt.Errorf("%w: target vector holds %d values, want %d", ErrDimensionMismatch, len(targets), rows)
	}

	opts.applyDefaults()
	if opts.LossHistory != nil && len(opts.LossHistory) < opts.Epochs {
		return 0, fmt.Errorf("%w: loss history holds %d slots, want %d", ErrDimensionMismatch, len(opts.LossHistory), opts.Epochs)
	}

	var loss float32
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		var total float32
		for row := 0; row < rows; row++ {
			input := samples[row*n.inputSize : (row+1)*n.inputSize]
			target := targets[row]

			n.forward(input)
			diff := n.output - target
			total += diff * diff
			n.backward(input, target, opts.LearningRate)
		}
		loss = total / float32(rows)

		if opts.LossHistory != nil {
			opts.LossHistory[epoch] = loss
		}

		if loss < opts.TargetLoss {
			// Early stop: pad the rest of the recording so it is always
			// fully populated.
			if opts.LossHistory != nil {
				for e := epoch + 1; e < opts.Epochs; e++ {
					opts.LossHistory[e] = loss
				}
			}
			break
		}
	}

	return loss, nil
}
