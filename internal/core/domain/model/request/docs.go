// Package request contains the customer-request aggregate and its status
// state machine. A request owns zero or more orders by shared request ID;
// status changes on the request cascade to those orders through the
// application layer.
package request
