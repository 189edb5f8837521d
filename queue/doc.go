/*
Package queue holds the pending work of growing a tree: a Task per node
still to be developed, with the splits allowed below it, and the Queue
interface workers pull tasks from.

Stack is the in-memory Queue used by cart.Grow. Being LIFO, it makes
trees grow depth first.
*/
package queue
