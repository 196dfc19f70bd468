package search

// priorityQueue orders entries by priority, then by insertion sequence,
// so equal-cost entries come out earliest-inserted first.
type priorityQueue[S comparable] []*entry[S]

func (queue priorityQueue[S]) Len() int { return len(queue) }
func (queue priorityQueue[S]) Less(i, j int) bool {
	if queue[i].priority != queue[j].priority {
		return queue[i].priority < queue[j].priority
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue[S]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *priorityQueue[S]) Push(x any) {
	*queue = append(*queue, x.(*entry[S]))
}

func (queue *priorityQueue[S]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
