// Command crtracker maintains a deduplicated catalog of episodic show
// releases. It scrapes weekly programming schedules and the community
// wiki, merges what it finds into a CSV catalog without creating
// duplicates, and offers validation, canon annotation, and reporting
// over the result.
package main
